package domain

import (
	"errors"
	"strings"
	"time"
)

// Common validation errors for Agency
var (
	ErrEmptyAgencyName    = errors.New("agency name cannot be empty")
	ErrEmptyAgencyAddress = errors.New("agency address cannot be empty")
	ErrEmptyAgencyPhone   = errors.New("agency phone cannot be empty")
)

// Agency represents a real-estate agency. The ID is assigned by the store
// at creation time and is immutable afterwards.
type Agency struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAgency creates a new Agency with the given name, address, and phone.
// The ID is left zero until the store assigns one.
// Returns an error if validation fails.
func NewAgency(name, address, phone string) (*Agency, error) {
	agency := &Agency{
		Name:    name,
		Address: address,
		Phone:   phone,
	}

	if err := agency.Validate(); err != nil {
		return nil, err
	}

	return agency, nil
}

// Validate checks if the Agency has valid data.
// Returns an error if any field fails validation.
func (a *Agency) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyAgencyName
	}
	if strings.TrimSpace(a.Address) == "" {
		return ErrEmptyAgencyAddress
	}
	if strings.TrimSpace(a.Phone) == "" {
		return ErrEmptyAgencyPhone
	}
	return nil
}
