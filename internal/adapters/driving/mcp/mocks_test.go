package mcp

import (
	"context"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// mockProvisionService is a mock implementation of driving.ProvisionService.
type mockProvisionService struct {
	hits       []domain.ProvisionHit
	detail     *domain.ProvisionDetail
	lastSearch domain.ProvisionSearch
	lastLookup domain.ProvisionLookup
	err        error
}

func (m *mockProvisionService) Search(_ context.Context, q domain.ProvisionSearch) ([]domain.ProvisionHit, error) {
	m.lastSearch = q
	return m.hits, m.err
}

func (m *mockProvisionService) Get(_ context.Context, q domain.ProvisionLookup) (*domain.ProvisionDetail, error) {
	m.lastLookup = q
	return m.detail, m.err
}

// mockRegimeService is a mock implementation of driving.RegimeService.
type mockRegimeService struct {
	regimes       []domain.RegimeDetail
	procedures    []domain.DelistingDetail
	lastQuery     domain.RegimeQuery
	lastDelisting domain.DelistingQuery
	err           error
}

func (m *mockRegimeService) Get(_ context.Context, q domain.RegimeQuery) ([]domain.RegimeDetail, error) {
	m.lastQuery = q
	return m.regimes, m.err
}

func (m *mockRegimeService) DelistingProcedures(
	_ context.Context,
	q domain.DelistingQuery,
) ([]domain.DelistingDetail, error) {
	m.lastDelisting = q
	return m.procedures, m.err
}

// mockExecutiveOrderService is a mock implementation of driving.ExecutiveOrderService.
type mockExecutiveOrderService struct {
	order      *domain.ExecutiveOrderDetail
	lastLookup domain.ExecutiveOrderLookup
	err        error
}

func (m *mockExecutiveOrderService) Get(
	_ context.Context,
	q domain.ExecutiveOrderLookup,
) (*domain.ExecutiveOrderDetail, error) {
	m.lastLookup = q
	return m.order, m.err
}

// mockCyberService is a mock implementation of driving.CyberService.
type mockCyberService struct {
	report    *domain.CyberReport
	lastQuery domain.CyberQuery
	err       error
}

func (m *mockCyberService) Check(_ context.Context, q domain.CyberQuery) (*domain.CyberReport, error) {
	m.lastQuery = q
	return m.report, m.err
}

// mockExportControlService is a mock implementation of driving.ExportControlService.
type mockExportControlService struct {
	controls  []domain.ExportControl
	lastQuery domain.ExportControlQuery
	err       error
}

func (m *mockExportControlService) Get(_ context.Context, q domain.ExportControlQuery) ([]domain.ExportControl, error) {
	m.lastQuery = q
	return m.controls, m.err
}

// mockCaseLawService is a mock implementation of driving.CaseLawService.
type mockCaseLawService struct {
	cases     []domain.CaseLawDetail
	lastQuery domain.CaseLawQuery
	err       error
}

func (m *mockCaseLawService) Search(_ context.Context, q domain.CaseLawQuery) ([]domain.CaseLawDetail, error) {
	m.lastQuery = q
	return m.cases, m.err
}

// mockSourceService is a mock implementation of driving.SourceService.
type mockSourceService struct {
	listing   *domain.SourceListing
	about     *domain.About
	lastQuery domain.SourceQuery
	err       error
}

func (m *mockSourceService) List(_ context.Context, q domain.SourceQuery) (*domain.SourceListing, error) {
	m.lastQuery = q
	return m.listing, m.err
}

func (m *mockSourceService) About(_ context.Context) (*domain.About, error) {
	return m.about, m.err
}

// mockFreshnessService is a mock implementation of driving.FreshnessService.
type mockFreshnessService struct {
	report    *domain.FreshnessReport
	lastQuery domain.FreshnessQuery
	err       error
}

func (m *mockFreshnessService) Check(_ context.Context, q domain.FreshnessQuery) (*domain.FreshnessReport, error) {
	m.lastQuery = q
	return m.report, m.err
}

// mockPorts returns a Ports with every service mocked.
func mockPorts() *Ports {
	return &Ports{
		Provisions:      &mockProvisionService{},
		Regimes:         &mockRegimeService{},
		ExecutiveOrders: &mockExecutiveOrderService{},
		Cyber:           &mockCyberService{},
		ExportControls:  &mockExportControlService{},
		CaseLaw:         &mockCaseLawService{},
		Sources:         &mockSourceService{},
		Freshness:       &mockFreshnessService{},
	}
}
