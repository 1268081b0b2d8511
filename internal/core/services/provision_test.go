package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

func TestProvisionService_Search_EmptyQuery(t *testing.T) {
	mock := &mockProvisionStore{}
	svc := NewProvisionService(mock)

	hits, err := svc.Search(context.Background(), domain.ProvisionSearch{Query: "  \t "})
	require.NoError(t, err)
	assert.NotNil(t, hits)
	assert.Empty(t, hits)
	assert.Empty(t, mock.lastSearch.Query, "store must not be queried")
}

func TestProvisionService_Search_NormalisesInput(t *testing.T) {
	mock := &mockProvisionStore{}
	svc := NewProvisionService(mock)

	_, err := svc.Search(context.Background(), domain.ProvisionSearch{
		Query:     "  asset freeze ",
		SourceIDs: []string{" EU_COUNCIL_SANCTIONS ", "", "EU_COUNCIL_SANCTIONS"},
		Topics:    []string{"cyber", " cyber"},
		RegimeID:  "  ",
		Limit:     500,
	})
	require.NoError(t, err)

	assert.Equal(t, "asset freeze", mock.lastSearch.Query)
	assert.Equal(t, []string{"EU_COUNCIL_SANCTIONS"}, mock.lastSearch.SourceIDs)
	assert.Equal(t, []string{"cyber"}, mock.lastSearch.Topics)
	assert.Empty(t, mock.lastSearch.RegimeID)
	assert.Equal(t, domain.MaxLimit, mock.lastSearch.Limit)
}

func TestProvisionService_Search_Limits(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{"omitted uses default", 0, domain.DefaultLimit},
		{"negative clamps to one", -3, domain.MinLimit},
		{"above max clamps", 51, domain.MaxLimit},
		{"within range", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockProvisionStore{}
			_, err := NewProvisionService(mock).Search(context.Background(),
				domain.ProvisionSearch{Query: "freeze", Limit: tt.requested})
			require.NoError(t, err)
			assert.Equal(t, tt.want, mock.lastSearch.Limit)
		})
	}
}

func TestProvisionService_Search_Integration(t *testing.T) {
	store := newSeededStore(t)
	svc := NewProvisionService(store.ProvisionStore())

	hits, err := svc.Search(context.Background(), domain.ProvisionSearch{Query: "taliban"})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "UNSCR_1267_OP4", hits[0].ItemID)

	none, err := svc.Search(context.Background(), domain.ProvisionSearch{Query: "zeppelin"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProvisionService_Search_StorageError(t *testing.T) {
	svc := NewProvisionService(&mockProvisionStore{err: errStorage})

	_, err := svc.Search(context.Background(), domain.ProvisionSearch{Query: "freeze"})
	assert.ErrorIs(t, err, errStorage)
}

func TestProvisionService_Get_RequiresBothKeys(t *testing.T) {
	svc := NewProvisionService(&mockProvisionStore{})

	tests := []domain.ProvisionLookup{
		{SourceID: "", ItemID: "X"},
		{SourceID: "UN_SECURITY_COUNCIL", ItemID: "  "},
		{},
	}
	for _, q := range tests {
		_, err := svc.Get(context.Background(), q)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestProvisionService_Get_NotFound(t *testing.T) {
	store := newSeededStore(t)
	svc := NewProvisionService(store.ProvisionStore())

	got, err := svc.Get(context.Background(), domain.ProvisionLookup{SourceID: "UN_SECURITY_COUNCIL", ItemID: "NOPE"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProvisionService_Get_RelatedByTopic(t *testing.T) {
	store := newSeededStore(t)
	svc := NewProvisionService(store.ProvisionStore())
	ctx := context.Background()

	got, err := svc.Get(ctx, domain.ProvisionLookup{
		SourceID:       "UK_OFSI_REGULATIONS",
		ItemID:         "SI_2019_855_REG_11",
		IncludeRelated: true,
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Related, domain.RelatedLimit)

	for _, ref := range got.Related {
		assert.NotEqual(t, "SI_2019_855_REG_11", ref.ItemID)

		p, err := svc.Get(ctx, domain.ProvisionLookup{SourceID: ref.SourceID, ItemID: ref.ItemID})
		require.NoError(t, err)
		assert.Contains(t, p.Topics, "cyber")
	}
}

func TestProvisionService_Get_RelatedByRegime(t *testing.T) {
	store := newSeededStore(t)
	svc := NewProvisionService(store.ProvisionStore())

	got, err := svc.Get(context.Background(), domain.ProvisionLookup{
		SourceID:       "EU_COUNCIL_SANCTIONS",
		ItemID:         "REG_2019_796_ART_3",
		IncludeRelated: true,
	})
	require.NoError(t, err)
	require.Len(t, got.Related, 1)
	assert.Equal(t, "DEC_2019_797_ART_4", got.Related[0].ItemID)
}

func TestProvisionService_Get_WithoutRelated(t *testing.T) {
	store := newSeededStore(t)
	svc := NewProvisionService(store.ProvisionStore())

	got, err := svc.Get(context.Background(), domain.ProvisionLookup{
		SourceID: "EU_COUNCIL_SANCTIONS",
		ItemID:   "REG_2019_796_ART_3",
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Related)
}
