package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/alienx5499/property-portal/internal/domain"
	"github.com/alienx5499/property-portal/internal/store"
)

// MockAgencyStore implements store.AgencyStore for testing
type MockAgencyStore struct {
	// Custom behavior functions
	CreateFn        func(ctx context.Context, agency *domain.Agency) error
	GetByIDFn       func(ctx context.Context, id int64) (*domain.Agency, error)
	GetByNameFn     func(ctx context.Context, name string) (*domain.Agency, error)
	FindAllFn       func(ctx context.Context) ([]*domain.Agency, error)
	SearchByNameFn  func(ctx context.Context, name string) ([]*domain.Agency, error)
	UpdateFn        func(ctx context.Context, agency *domain.Agency) error
	DeleteFn        func(ctx context.Context, id int64) error
	GetStatisticsFn func(ctx context.Context) (*store.AgencyStatistics, error)

	// Default response values
	Agency     *domain.Agency
	Agencies   []*domain.Agency
	Statistics *store.AgencyStatistics
	Err        error

	// Call tracking for verification
	CreateCalls struct {
		mu       sync.Mutex
		Count    int
		Agencies []*domain.Agency
	}
	SearchByNameCalls struct {
		mu    sync.Mutex
		Count int
		Names []string
	}
}

var _ store.AgencyStore = (*MockAgencyStore)(nil)

// Create implements the store.AgencyStore interface
func (m *MockAgencyStore) Create(ctx context.Context, agency *domain.Agency) error {
	m.CreateCalls.mu.Lock()
	m.CreateCalls.Count++
	m.CreateCalls.Agencies = append(m.CreateCalls.Agencies, agency)
	m.CreateCalls.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, agency)
	}
	return m.Err
}

// GetByID implements the store.AgencyStore interface
func (m *MockAgencyStore) GetByID(ctx context.Context, id int64) (*domain.Agency, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Agency, m.Err
}

// GetByName implements the store.AgencyStore interface
func (m *MockAgencyStore) GetByName(ctx context.Context, name string) (*domain.Agency, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return m.Agency, m.Err
}

// FindAll implements the store.AgencyStore interface
func (m *MockAgencyStore) FindAll(ctx context.Context) ([]*domain.Agency, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	return m.Agencies, m.Err
}

// SearchByName implements the store.AgencyStore interface
func (m *MockAgencyStore) SearchByName(ctx context.Context, name string) ([]*domain.Agency, error) {
	m.SearchByNameCalls.mu.Lock()
	m.SearchByNameCalls.Count++
	m.SearchByNameCalls.Names = append(m.SearchByNameCalls.Names, name)
	m.SearchByNameCalls.mu.Unlock()

	if m.SearchByNameFn != nil {
		return m.SearchByNameFn(ctx, name)
	}
	return m.Agencies, m.Err
}

// Update implements the store.AgencyStore interface
func (m *MockAgencyStore) Update(ctx context.Context, agency *domain.Agency) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, agency)
	}
	return m.Err
}

// Delete implements the store.AgencyStore interface
func (m *MockAgencyStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

// GetStatistics implements the store.AgencyStore interface
func (m *MockAgencyStore) GetStatistics(ctx context.Context) (*store.AgencyStatistics, error) {
	if m.GetStatisticsFn != nil {
		return m.GetStatisticsFn(ctx)
	}
	if m.Statistics != nil {
		return m.Statistics, m.Err
	}
	return &store.AgencyStatistics{}, m.Err
}

// WithTx implements the store.AgencyStore interface. The mock has no
// transaction state, so it returns itself.
func (m *MockAgencyStore) WithTx(tx *sql.Tx) store.AgencyStore {
	return m
}
