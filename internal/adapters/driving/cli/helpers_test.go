package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sanctions-law/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/sanctions-law/internal/testfixtures"
)

// fixtureAsOf pins freshness output to the fixture's reference date.
const fixtureAsOf = testfixtures.AsOf

// env is an isolated database and config file for one test.
type env struct {
	dir    string
	db     string
	config string
}

// newEnv returns paths in a temp dir; nothing is created yet.
func newEnv(t *testing.T) env {
	t.Helper()
	dir := t.TempDir()
	return env{
		dir:    dir,
		db:     filepath.Join(dir, "sanctions.db"),
		config: filepath.Join(dir, "config.toml"),
	}
}

// newBuiltEnv returns an env whose database holds the fixture dataset.
func newBuiltEnv(t *testing.T) env {
	t.Helper()
	e := newEnv(t)

	store, err := sqlite.NewStore(e.db)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.CreateSchema(ctx))
	require.NoError(t, store.Seed(ctx, testfixtures.Dataset()))
	return e
}

// writeSeed writes the fixture dataset as a seed file and returns its path.
func (e env) writeSeed(t *testing.T) string {
	t.Helper()
	data, err := testfixtures.JSON()
	require.NoError(t, err)

	path := filepath.Join(e.dir, "seed.json")
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

// run executes the root command against this env.
func (e env) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return execute(t, append(args, "--db", e.db, "--config", e.config)...)
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	defer resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := Execute()
	return buf.String(), err
}

// resetFlags restores every flag in the tree to its default so values do
// not leak between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
