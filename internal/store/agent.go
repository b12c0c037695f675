package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/alienx5499/property-portal/internal/domain"
)

// AgentStore defines the interface for agent data persistence.
type AgentStore interface {
	// Create saves a new agent and assigns the store-generated ID back onto
	// the entity. Returns ErrInvalidEntity if the agency does not exist.
	Create(ctx context.Context, agent *domain.Agent) error

	// GetByID retrieves an agent by its unique ID.
	// Returns ErrAgentNotFound if the agent does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Agent, error)

	// GetByEmail retrieves an agent by email address.
	// Returns ErrAgentNotFound if no agent has that email.
	GetByEmail(ctx context.Context, email string) (*domain.Agent, error)

	// FindAll retrieves every agent, ordered by name.
	FindAll(ctx context.Context) ([]*domain.Agent, error)

	// FindByAgency retrieves the agents belonging to an agency, ordered by
	// name.
	FindByAgency(ctx context.Context, agencyID int64) ([]*domain.Agent, error)

	// FindActive retrieves all active agents, ordered by name.
	FindActive(ctx context.Context) ([]*domain.Agent, error)

	// Update modifies an existing agent's details and touches updated_at.
	// Returns ErrAgentNotFound if the agent does not exist.
	Update(ctx context.Context, agent *domain.Agent) error

	// SetActive flips the agent's active flag.
	// Returns ErrAgentNotFound if the agent does not exist.
	SetActive(ctx context.Context, id int64, active bool) error

	// Delete removes an agent by ID.
	// Returns ErrAgentNotFound if the agent does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new AgentStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) AgentStore
}

// AgentPerformanceStore defines the interface for per-period agent
// performance persistence. There is one record per agent per period.
type AgentPerformanceStore interface {
	// Create saves a new performance record. Returns ErrDuplicate if a
	// record already exists for the agent and period.
	Create(ctx context.Context, perf *domain.AgentPerformance) error

	// GetByID retrieves a performance record by its unique ID.
	// Returns ErrPerformanceNotFound if the record does not exist.
	GetByID(ctx context.Context, id int64) (*domain.AgentPerformance, error)

	// GetByAgentAndPeriod retrieves the record for the agent and period.
	// The period is normalized with domain.PeriodKey before the lookup.
	// Returns ErrPerformanceNotFound if the record does not exist.
	GetByAgentAndPeriod(ctx context.Context, agentID int64, period time.Time) (*domain.AgentPerformance, error)

	// FindByAgent retrieves all performance records for an agent, newest
	// period first.
	FindByAgent(ctx context.Context, agentID int64) ([]*domain.AgentPerformance, error)

	// Update modifies an existing performance record.
	// Returns ErrPerformanceNotFound if the record does not exist.
	Update(ctx context.Context, perf *domain.AgentPerformance) error

	// Delete removes a performance record by ID.
	// Returns ErrPerformanceNotFound if the record does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new AgentPerformanceStore instance that uses the
	// provided transaction.
	WithTx(tx *sql.Tx) AgentPerformanceStore
}
