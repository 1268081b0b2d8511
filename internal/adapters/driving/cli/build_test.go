package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/testfixtures"
)

func TestBuildCmd_SeedFlagRequired(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "build")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "seed" not set`)
}

func TestBuildCmd_BuildsDatabase(t *testing.T) {
	e := newEnv(t)
	seed := e.writeSeed(t)

	out, err := e.run(t, "build", "--seed", seed)
	require.NoError(t, err)

	total := testfixtures.SourceCount + testfixtures.RegimeCount + testfixtures.ProvisionCount +
		testfixtures.ExecutiveOrderCount + testfixtures.DelistingProcedureCount +
		testfixtures.ExportControlCount + testfixtures.CaseLawCount + testfixtures.FreshnessCount
	assert.Contains(t, out, fmt.Sprintf("Total records: %d", total))
	assert.Contains(t, out, "provisions")
	assert.FileExists(t, e.db)

	out, err = e.run(t, "search", "Taliban")
	require.NoError(t, err)
	assert.Contains(t, out, "UNSCR_1267_OP4")
}

func TestBuildCmd_InvalidSeedLeavesDatabase(t *testing.T) {
	e := newBuiltEnv(t)

	bad := filepath.Join(e.dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"schema_version": "1.0", "sources": []}`), 0600))

	_, err := e.run(t, "build", "--seed", bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSeed)

	out, err := e.run(t, "sources")
	require.NoError(t, err)
	assert.Contains(t, out, "UN_SECURITY_COUNCIL")
}
