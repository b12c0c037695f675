package domain

import (
	"errors"
	"strings"
	"time"
)

// Common validation errors for Agent
var (
	ErrEmptyAgentName    = errors.New("agent name cannot be empty")
	ErrEmptyAgentEmail   = errors.New("agent email cannot be empty")
	ErrEmptyAgentAgency  = errors.New("agent agency ID cannot be empty")
	ErrInvalidAgentEmail = errors.New("invalid agent email format")
)

// Agent represents a sales agent employed by an agency.
type Agent struct {
	ID                     int64     `json:"id"`
	AgencyID               int64     `json:"agency_id"`
	Name                   string    `json:"name"`
	Email                  string    `json:"email"`
	Phone                  string    `json:"phone"`
	IsActive               bool      `json:"is_active"`
	TotalDealsClosed       int       `json:"total_deals_closed"`
	AvgResponseTimeMinutes int       `json:"avg_response_time_minutes"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// NewAgent creates a new active Agent belonging to the given agency.
// Returns an error if validation fails.
func NewAgent(agencyID int64, name, email, phone string) (*Agent, error) {
	agent := &Agent{
		AgencyID: agencyID,
		Name:     name,
		Email:    email,
		Phone:    phone,
		IsActive: true,
	}

	if err := agent.Validate(); err != nil {
		return nil, err
	}

	return agent, nil
}

// Validate checks if the Agent has valid data.
func (a *Agent) Validate() error {
	if a.AgencyID <= 0 {
		return ErrEmptyAgentAgency
	}
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyAgentName
	}
	if strings.TrimSpace(a.Email) == "" {
		return ErrEmptyAgentEmail
	}
	if !strings.Contains(a.Email, "@") {
		return ErrInvalidAgentEmail
	}
	return nil
}
