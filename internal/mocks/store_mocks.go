package mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/alienx5499/property-portal/internal/domain"
	"github.com/alienx5499/property-portal/internal/store"
)

// MockAgentStore implements store.AgentStore for testing
type MockAgentStore struct {
	CreateFn       func(ctx context.Context, agent *domain.Agent) error
	GetByIDFn      func(ctx context.Context, id int64) (*domain.Agent, error)
	GetByEmailFn   func(ctx context.Context, email string) (*domain.Agent, error)
	FindAllFn      func(ctx context.Context) ([]*domain.Agent, error)
	FindByAgencyFn func(ctx context.Context, agencyID int64) ([]*domain.Agent, error)
	FindActiveFn   func(ctx context.Context) ([]*domain.Agent, error)
	UpdateFn       func(ctx context.Context, agent *domain.Agent) error
	SetActiveFn    func(ctx context.Context, id int64, active bool) error
	DeleteFn       func(ctx context.Context, id int64) error

	Agent  *domain.Agent
	Agents []*domain.Agent
	Err    error
}

var _ store.AgentStore = (*MockAgentStore)(nil)

func (m *MockAgentStore) Create(ctx context.Context, agent *domain.Agent) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, agent)
	}
	return m.Err
}

func (m *MockAgentStore) GetByID(ctx context.Context, id int64) (*domain.Agent, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Agent, m.Err
}

func (m *MockAgentStore) GetByEmail(ctx context.Context, email string) (*domain.Agent, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return m.Agent, m.Err
}

func (m *MockAgentStore) FindAll(ctx context.Context) ([]*domain.Agent, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	return m.Agents, m.Err
}

func (m *MockAgentStore) FindByAgency(ctx context.Context, agencyID int64) ([]*domain.Agent, error) {
	if m.FindByAgencyFn != nil {
		return m.FindByAgencyFn(ctx, agencyID)
	}
	return m.Agents, m.Err
}

func (m *MockAgentStore) FindActive(ctx context.Context) ([]*domain.Agent, error) {
	if m.FindActiveFn != nil {
		return m.FindActiveFn(ctx)
	}
	return m.Agents, m.Err
}

func (m *MockAgentStore) Update(ctx context.Context, agent *domain.Agent) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, agent)
	}
	return m.Err
}

func (m *MockAgentStore) SetActive(ctx context.Context, id int64, active bool) error {
	if m.SetActiveFn != nil {
		return m.SetActiveFn(ctx, id, active)
	}
	return m.Err
}

func (m *MockAgentStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

func (m *MockAgentStore) WithTx(tx *sql.Tx) store.AgentStore {
	return m
}

// MockAgentPerformanceStore implements store.AgentPerformanceStore for testing
type MockAgentPerformanceStore struct {
	CreateFn              func(ctx context.Context, perf *domain.AgentPerformance) error
	GetByIDFn             func(ctx context.Context, id int64) (*domain.AgentPerformance, error)
	GetByAgentAndPeriodFn func(ctx context.Context, agentID int64, period time.Time) (*domain.AgentPerformance, error)
	FindByAgentFn         func(ctx context.Context, agentID int64) ([]*domain.AgentPerformance, error)
	UpdateFn              func(ctx context.Context, perf *domain.AgentPerformance) error
	DeleteFn              func(ctx context.Context, id int64) error

	Performance *domain.AgentPerformance
	History     []*domain.AgentPerformance
	Err         error
}

var _ store.AgentPerformanceStore = (*MockAgentPerformanceStore)(nil)

func (m *MockAgentPerformanceStore) Create(ctx context.Context, perf *domain.AgentPerformance) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, perf)
	}
	return m.Err
}

func (m *MockAgentPerformanceStore) GetByID(ctx context.Context, id int64) (*domain.AgentPerformance, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Performance, m.Err
}

func (m *MockAgentPerformanceStore) GetByAgentAndPeriod(ctx context.Context, agentID int64, period time.Time) (*domain.AgentPerformance, error) {
	if m.GetByAgentAndPeriodFn != nil {
		return m.GetByAgentAndPeriodFn(ctx, agentID, period)
	}
	return m.Performance, m.Err
}

func (m *MockAgentPerformanceStore) FindByAgent(ctx context.Context, agentID int64) ([]*domain.AgentPerformance, error) {
	if m.FindByAgentFn != nil {
		return m.FindByAgentFn(ctx, agentID)
	}
	return m.History, m.Err
}

func (m *MockAgentPerformanceStore) Update(ctx context.Context, perf *domain.AgentPerformance) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, perf)
	}
	return m.Err
}

func (m *MockAgentPerformanceStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

func (m *MockAgentPerformanceStore) WithTx(tx *sql.Tx) store.AgentPerformanceStore {
	return m
}

// MockBuyerStore implements store.BuyerStore for testing
type MockBuyerStore struct {
	CreateFn     func(ctx context.Context, buyer *domain.Buyer) error
	GetByIDFn    func(ctx context.Context, id int64) (*domain.Buyer, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.Buyer, error)
	FindAllFn    func(ctx context.Context) ([]*domain.Buyer, error)
	FindActiveFn func(ctx context.Context) ([]*domain.Buyer, error)
	UpdateFn     func(ctx context.Context, buyer *domain.Buyer) error
	DeleteFn     func(ctx context.Context, id int64) error

	Buyer  *domain.Buyer
	Buyers []*domain.Buyer
	Err    error
}

var _ store.BuyerStore = (*MockBuyerStore)(nil)

func (m *MockBuyerStore) Create(ctx context.Context, buyer *domain.Buyer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, buyer)
	}
	return m.Err
}

func (m *MockBuyerStore) GetByID(ctx context.Context, id int64) (*domain.Buyer, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Buyer, m.Err
}

func (m *MockBuyerStore) GetByEmail(ctx context.Context, email string) (*domain.Buyer, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return m.Buyer, m.Err
}

func (m *MockBuyerStore) FindAll(ctx context.Context) ([]*domain.Buyer, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	return m.Buyers, m.Err
}

func (m *MockBuyerStore) FindActive(ctx context.Context) ([]*domain.Buyer, error) {
	if m.FindActiveFn != nil {
		return m.FindActiveFn(ctx)
	}
	return m.Buyers, m.Err
}

func (m *MockBuyerStore) Update(ctx context.Context, buyer *domain.Buyer) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, buyer)
	}
	return m.Err
}

func (m *MockBuyerStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

func (m *MockBuyerStore) WithTx(tx *sql.Tx) store.BuyerStore {
	return m
}

// MockFeatureStore implements store.FeatureStore for testing
type MockFeatureStore struct {
	CreateFn         func(ctx context.Context, feature *domain.Feature) error
	GetByIDFn        func(ctx context.Context, id int64) (*domain.Feature, error)
	FindAllFn        func(ctx context.Context) ([]*domain.Feature, error)
	FindByCategoryFn func(ctx context.Context, category domain.FeatureCategory) ([]*domain.Feature, error)
	UpdateFn         func(ctx context.Context, feature *domain.Feature) error
	DeleteFn         func(ctx context.Context, id int64) error

	Feature  *domain.Feature
	Features []*domain.Feature
	Err      error
}

var _ store.FeatureStore = (*MockFeatureStore)(nil)

func (m *MockFeatureStore) Create(ctx context.Context, feature *domain.Feature) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, feature)
	}
	return m.Err
}

func (m *MockFeatureStore) GetByID(ctx context.Context, id int64) (*domain.Feature, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Feature, m.Err
}

func (m *MockFeatureStore) FindAll(ctx context.Context) ([]*domain.Feature, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	return m.Features, m.Err
}

func (m *MockFeatureStore) FindByCategory(ctx context.Context, category domain.FeatureCategory) ([]*domain.Feature, error) {
	if m.FindByCategoryFn != nil {
		return m.FindByCategoryFn(ctx, category)
	}
	return m.Features, m.Err
}

func (m *MockFeatureStore) Update(ctx context.Context, feature *domain.Feature) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, feature)
	}
	return m.Err
}

func (m *MockFeatureStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

func (m *MockFeatureStore) WithTx(tx *sql.Tx) store.FeatureStore {
	return m
}

// MockInquiryStore implements store.InquiryStore for testing
type MockInquiryStore struct {
	CreateFn         func(ctx context.Context, inquiry *domain.Inquiry) error
	GetByIDFn        func(ctx context.Context, id int64) (*domain.Inquiry, error)
	FindAllFn        func(ctx context.Context) ([]*domain.Inquiry, error)
	FindByPropertyFn func(ctx context.Context, propertyID int64) ([]*domain.Inquiry, error)
	FindByAgentFn    func(ctx context.Context, agentID int64) ([]*domain.Inquiry, error)
	FindByStatusFn   func(ctx context.Context, status domain.InquiryStatus) ([]*domain.Inquiry, error)
	MarkRespondedFn  func(ctx context.Context, id int64) error
	CloseFn          func(ctx context.Context, id int64) error
	UpdateFn         func(ctx context.Context, inquiry *domain.Inquiry) error
	DeleteFn         func(ctx context.Context, id int64) error

	Inquiry   *domain.Inquiry
	Inquiries []*domain.Inquiry
	Err       error
}

var _ store.InquiryStore = (*MockInquiryStore)(nil)

func (m *MockInquiryStore) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, inquiry)
	}
	return m.Err
}

func (m *MockInquiryStore) GetByID(ctx context.Context, id int64) (*domain.Inquiry, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Inquiry, m.Err
}

func (m *MockInquiryStore) FindAll(ctx context.Context) ([]*domain.Inquiry, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	return m.Inquiries, m.Err
}

func (m *MockInquiryStore) FindByProperty(ctx context.Context, propertyID int64) ([]*domain.Inquiry, error) {
	if m.FindByPropertyFn != nil {
		return m.FindByPropertyFn(ctx, propertyID)
	}
	return m.Inquiries, m.Err
}

func (m *MockInquiryStore) FindByAgent(ctx context.Context, agentID int64) ([]*domain.Inquiry, error) {
	if m.FindByAgentFn != nil {
		return m.FindByAgentFn(ctx, agentID)
	}
	return m.Inquiries, m.Err
}

func (m *MockInquiryStore) FindByStatus(ctx context.Context, status domain.InquiryStatus) ([]*domain.Inquiry, error) {
	if m.FindByStatusFn != nil {
		return m.FindByStatusFn(ctx, status)
	}
	return m.Inquiries, m.Err
}

func (m *MockInquiryStore) MarkResponded(ctx context.Context, id int64) error {
	if m.MarkRespondedFn != nil {
		return m.MarkRespondedFn(ctx, id)
	}
	return m.Err
}

func (m *MockInquiryStore) Close(ctx context.Context, id int64) error {
	if m.CloseFn != nil {
		return m.CloseFn(ctx, id)
	}
	return m.Err
}

func (m *MockInquiryStore) Update(ctx context.Context, inquiry *domain.Inquiry) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, inquiry)
	}
	return m.Err
}

func (m *MockInquiryStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

func (m *MockInquiryStore) WithTx(tx *sql.Tx) store.InquiryStore {
	return m
}

// MockOfferStore implements store.OfferStore for testing
type MockOfferStore struct {
	CreateFn         func(ctx context.Context, offer *domain.Offer) error
	GetByIDFn        func(ctx context.Context, id int64) (*domain.Offer, error)
	FindByPropertyFn func(ctx context.Context, propertyID int64) ([]*domain.Offer, error)
	FindByBuyerFn    func(ctx context.Context, buyerID int64) ([]*domain.Offer, error)
	FindByStatusFn   func(ctx context.Context, status domain.OfferStatus) ([]*domain.Offer, error)
	UpdateStatusFn   func(ctx context.Context, id int64, status domain.OfferStatus) error
	UpdateFn         func(ctx context.Context, offer *domain.Offer) error
	DeleteFn         func(ctx context.Context, id int64) error

	Offer  *domain.Offer
	Offers []*domain.Offer
	Err    error
}

var _ store.OfferStore = (*MockOfferStore)(nil)

func (m *MockOfferStore) Create(ctx context.Context, offer *domain.Offer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, offer)
	}
	return m.Err
}

func (m *MockOfferStore) GetByID(ctx context.Context, id int64) (*domain.Offer, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Offer, m.Err
}

func (m *MockOfferStore) FindByProperty(ctx context.Context, propertyID int64) ([]*domain.Offer, error) {
	if m.FindByPropertyFn != nil {
		return m.FindByPropertyFn(ctx, propertyID)
	}
	return m.Offers, m.Err
}

func (m *MockOfferStore) FindByBuyer(ctx context.Context, buyerID int64) ([]*domain.Offer, error) {
	if m.FindByBuyerFn != nil {
		return m.FindByBuyerFn(ctx, buyerID)
	}
	return m.Offers, m.Err
}

func (m *MockOfferStore) FindByStatus(ctx context.Context, status domain.OfferStatus) ([]*domain.Offer, error) {
	if m.FindByStatusFn != nil {
		return m.FindByStatusFn(ctx, status)
	}
	return m.Offers, m.Err
}

func (m *MockOfferStore) UpdateStatus(ctx context.Context, id int64, status domain.OfferStatus) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, status)
	}
	return m.Err
}

func (m *MockOfferStore) Update(ctx context.Context, offer *domain.Offer) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, offer)
	}
	return m.Err
}

func (m *MockOfferStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

func (m *MockOfferStore) WithTx(tx *sql.Tx) store.OfferStore {
	return m
}
