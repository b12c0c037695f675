package domain

import (
	"errors"
	"strings"
	"time"
)

// Common validation errors for Buyer
var (
	ErrEmptyBuyerName  = errors.New("buyer name cannot be empty")
	ErrEmptyBuyerEmail = errors.New("buyer email cannot be empty")
)

// Buyer represents a prospective purchaser.
type Buyer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBuyer creates a new active Buyer.
// Returns an error if validation fails.
func NewBuyer(name, email, phone string) (*Buyer, error) {
	buyer := &Buyer{
		Name:     name,
		Email:    email,
		Phone:    phone,
		IsActive: true,
	}

	if err := buyer.Validate(); err != nil {
		return nil, err
	}

	return buyer, nil
}

// Validate checks if the Buyer has valid data.
func (b *Buyer) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrEmptyBuyerName
	}
	if strings.TrimSpace(b.Email) == "" {
		return ErrEmptyBuyerEmail
	}
	return nil
}
