package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/alienx5499/property-portal/internal/domain"
	"github.com/alienx5499/property-portal/internal/store"
)

// MockPropertyStore implements store.PropertyStore for testing
type MockPropertyStore struct {
	// Custom behavior functions
	CreateFn             func(ctx context.Context, property *domain.Property) error
	GetByIDFn            func(ctx context.Context, id int64) (*domain.Property, error)
	FindAllFn            func(ctx context.Context) ([]*domain.Property, error)
	FindActiveListingsFn func(ctx context.Context) ([]*domain.Property, error)
	FindByNeighborhoodFn func(ctx context.Context, neighborhood string) ([]*domain.Property, error)
	FindByTypeFn         func(ctx context.Context, propertyType domain.PropertyType) ([]*domain.Property, error)
	FindByPriceRangeFn   func(ctx context.Context, minPrice, maxPrice int64) ([]*domain.Property, error)
	SearchByTextFn       func(ctx context.Context, searchText string) ([]*domain.Property, error)
	UpdateFn             func(ctx context.Context, property *domain.Property) error
	UpdateStatusFn       func(ctx context.Context, id int64, status domain.PropertyStatus) error
	UpdatePriceFn        func(ctx context.Context, id int64, newPrice int64) error
	DeleteFn             func(ctx context.Context, id int64) error
	GetStatisticsFn      func(ctx context.Context) (*store.PropertyStatistics, error)

	// Default response values
	Property   *domain.Property
	Properties []*domain.Property
	Statistics *store.PropertyStatistics
	Err        error

	// Call tracking for verification
	CreateCalls struct {
		mu         sync.Mutex
		Count      int
		Properties []*domain.Property
	}
	UpdateCalls struct {
		mu         sync.Mutex
		Count      int
		Properties []*domain.Property
	}
	UpdateStatusCalls struct {
		mu       sync.Mutex
		Count    int
		IDs      []int64
		Statuses []domain.PropertyStatus
	}
}

var _ store.PropertyStore = (*MockPropertyStore)(nil)

// Create implements the store.PropertyStore interface
func (m *MockPropertyStore) Create(ctx context.Context, property *domain.Property) error {
	m.CreateCalls.mu.Lock()
	m.CreateCalls.Count++
	m.CreateCalls.Properties = append(m.CreateCalls.Properties, property)
	m.CreateCalls.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, property)
	}
	return m.Err
}

// GetByID implements the store.PropertyStore interface
func (m *MockPropertyStore) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Property, m.Err
}

// FindAll implements the store.PropertyStore interface
func (m *MockPropertyStore) FindAll(ctx context.Context) ([]*domain.Property, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	return m.Properties, m.Err
}

// FindActiveListings implements the store.PropertyStore interface
func (m *MockPropertyStore) FindActiveListings(ctx context.Context) ([]*domain.Property, error) {
	if m.FindActiveListingsFn != nil {
		return m.FindActiveListingsFn(ctx)
	}
	return m.Properties, m.Err
}

// FindByNeighborhood implements the store.PropertyStore interface
func (m *MockPropertyStore) FindByNeighborhood(ctx context.Context, neighborhood string) ([]*domain.Property, error) {
	if m.FindByNeighborhoodFn != nil {
		return m.FindByNeighborhoodFn(ctx, neighborhood)
	}
	return m.Properties, m.Err
}

// FindByType implements the store.PropertyStore interface
func (m *MockPropertyStore) FindByType(ctx context.Context, propertyType domain.PropertyType) ([]*domain.Property, error) {
	if m.FindByTypeFn != nil {
		return m.FindByTypeFn(ctx, propertyType)
	}
	return m.Properties, m.Err
}

// FindByPriceRange implements the store.PropertyStore interface
func (m *MockPropertyStore) FindByPriceRange(ctx context.Context, minPrice, maxPrice int64) ([]*domain.Property, error) {
	if m.FindByPriceRangeFn != nil {
		return m.FindByPriceRangeFn(ctx, minPrice, maxPrice)
	}
	return m.Properties, m.Err
}

// SearchByText implements the store.PropertyStore interface
func (m *MockPropertyStore) SearchByText(ctx context.Context, searchText string) ([]*domain.Property, error) {
	if m.SearchByTextFn != nil {
		return m.SearchByTextFn(ctx, searchText)
	}
	return m.Properties, m.Err
}

// Update implements the store.PropertyStore interface
func (m *MockPropertyStore) Update(ctx context.Context, property *domain.Property) error {
	m.UpdateCalls.mu.Lock()
	m.UpdateCalls.Count++
	m.UpdateCalls.Properties = append(m.UpdateCalls.Properties, property)
	m.UpdateCalls.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, property)
	}
	return m.Err
}

// UpdateStatus implements the store.PropertyStore interface
func (m *MockPropertyStore) UpdateStatus(ctx context.Context, id int64, status domain.PropertyStatus) error {
	m.UpdateStatusCalls.mu.Lock()
	m.UpdateStatusCalls.Count++
	m.UpdateStatusCalls.IDs = append(m.UpdateStatusCalls.IDs, id)
	m.UpdateStatusCalls.Statuses = append(m.UpdateStatusCalls.Statuses, status)
	m.UpdateStatusCalls.mu.Unlock()

	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, status)
	}
	return m.Err
}

// UpdatePrice implements the store.PropertyStore interface
func (m *MockPropertyStore) UpdatePrice(ctx context.Context, id int64, newPrice int64) error {
	if m.UpdatePriceFn != nil {
		return m.UpdatePriceFn(ctx, id, newPrice)
	}
	return m.Err
}

// Delete implements the store.PropertyStore interface
func (m *MockPropertyStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

// GetStatistics implements the store.PropertyStore interface
func (m *MockPropertyStore) GetStatistics(ctx context.Context) (*store.PropertyStatistics, error) {
	if m.GetStatisticsFn != nil {
		return m.GetStatisticsFn(ctx)
	}
	if m.Statistics != nil {
		return m.Statistics, m.Err
	}
	return &store.PropertyStatistics{}, m.Err
}

// WithTx implements the store.PropertyStore interface. The mock has no
// transaction state, so it returns itself.
func (m *MockPropertyStore) WithTx(tx *sql.Tx) store.PropertyStore {
	return m
}
