package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

func TestExportControlService_Get(t *testing.T) {
	store := newSeededStore(t)
	svc := NewExportControlService(store.ExportControlStore())

	all, err := svc.Get(context.Background(), domain.ExportControlQuery{Jurisdiction: "  "})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	eu, err := svc.Get(context.Background(), domain.ExportControlQuery{Jurisdiction: " EU "})
	require.NoError(t, err)
	require.Len(t, eu, 1)
	assert.Equal(t, "EU_DUAL_USE_ART_5", eu[0].ID)

	limited, err := svc.Get(context.Background(), domain.ExportControlQuery{Limit: -1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
