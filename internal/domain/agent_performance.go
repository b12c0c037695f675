package domain

import (
	"errors"
	"time"
)

// Common validation errors for AgentPerformance
var (
	ErrEmptyPerformanceAgent  = errors.New("performance agent ID cannot be empty")
	ErrEmptyPerformancePeriod = errors.New("performance period cannot be empty")
	ErrNegativeCounter        = errors.New("performance counters cannot be negative")
)

// AgentPerformance holds per-period activity counters for an agent.
// MonthYear is the period key, normalized to the first day of the month;
// there is one row per agent per period.
type AgentPerformance struct {
	ID                     int64     `json:"id"`
	AgentID                int64     `json:"agent_id"`
	MonthYear              time.Time `json:"month_year"`
	TotalInquiries         int       `json:"total_inquiries"`
	RespondedInquiries     int       `json:"responded_inquiries"`
	AvgResponseTimeMinutes int       `json:"avg_response_time_minutes"`
	ClosedDeals            int       `json:"closed_deals"`
	TotalRevenue           int64     `json:"total_revenue"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// NewAgentPerformance creates an empty performance record for the agent and
// period. The period is truncated to the first day of its month.
// Returns an error if validation fails.
func NewAgentPerformance(agentID int64, period time.Time) (*AgentPerformance, error) {
	perf := &AgentPerformance{
		AgentID:   agentID,
		MonthYear: PeriodKey(period),
	}

	if err := perf.Validate(); err != nil {
		return nil, err
	}

	return perf, nil
}

// PeriodKey normalizes a timestamp to the canonical period key:
// midnight UTC on the first day of the month.
func PeriodKey(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Validate checks if the AgentPerformance has valid data.
func (p *AgentPerformance) Validate() error {
	if p.AgentID <= 0 {
		return ErrEmptyPerformanceAgent
	}
	if p.MonthYear.IsZero() {
		return ErrEmptyPerformancePeriod
	}
	if p.TotalInquiries < 0 || p.RespondedInquiries < 0 || p.ClosedDeals < 0 ||
		p.AvgResponseTimeMinutes < 0 || p.TotalRevenue < 0 {
		return ErrNegativeCounter
	}
	return nil
}
