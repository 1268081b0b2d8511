package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// MockProvisionService implements driving.ProvisionService for testing.
type MockProvisionService struct{}

func (m *MockProvisionService) Search(context.Context, domain.ProvisionSearch) ([]domain.ProvisionHit, error) {
	return []domain.ProvisionHit{}, nil
}

func (m *MockProvisionService) Get(context.Context, domain.ProvisionLookup) (*domain.ProvisionDetail, error) {
	return nil, nil
}

// MockSourceService implements driving.SourceService for testing.
type MockSourceService struct{}

func (m *MockSourceService) List(context.Context, domain.SourceQuery) (*domain.SourceListing, error) {
	return &domain.SourceListing{Sources: []domain.SourceSummary{}}, nil
}

func (m *MockSourceService) About(context.Context) (*domain.About, error) {
	return &domain.About{}, nil
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name  string
		ports *Ports
		want  error
	}{
		{"complete", &Ports{Provisions: &MockProvisionService{}, Sources: &MockSourceService{}}, nil},
		{"nil ports", nil, ErrInvalidPorts},
		{"missing provisions", &Ports{Sources: &MockSourceService{}}, ErrMissingProvisionService},
		{"missing sources", &Ports{Provisions: &MockProvisionService{}}, ErrMissingSourceService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
