package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// OfferStatus represents the negotiation state of an offer.
type OfferStatus string

// Possible offer status values
const (
	OfferStatusPending   OfferStatus = "pending"
	OfferStatusAccepted  OfferStatus = "accepted"
	OfferStatusRejected  OfferStatus = "rejected"
	OfferStatusWithdrawn OfferStatus = "withdrawn"
)

var offerStatusByCode = map[string]OfferStatus{
	string(OfferStatusPending):   OfferStatusPending,
	string(OfferStatusAccepted):  OfferStatusAccepted,
	string(OfferStatusRejected):  OfferStatusRejected,
	string(OfferStatusWithdrawn): OfferStatusWithdrawn,
}

// ParseOfferStatus decodes a stored code into an OfferStatus.
// Returns an error wrapping ErrUnknownCode for unrecognized codes.
func ParseOfferStatus(code string) (OfferStatus, error) {
	s, ok := offerStatusByCode[strings.ToLower(code)]
	if !ok {
		return "", fmt.Errorf("%w: offer status %q", ErrUnknownCode, code)
	}
	return s, nil
}

// Common validation errors for Offer
var (
	ErrEmptyOfferAgent    = errors.New("offer agent ID cannot be empty")
	ErrEmptyOfferBuyer    = errors.New("offer buyer ID cannot be empty")
	ErrEmptyOfferProperty = errors.New("offer property ID cannot be empty")
	ErrNonPositiveOffer   = errors.New("offer amount must be positive")
)

// Offer represents a purchase offer a buyer places on a property through an
// agent. ResponseDate is nil until the seller responds.
type Offer struct {
	ID           int64       `json:"id"`
	AgentID      int64       `json:"agent_id"`
	BuyerID      int64       `json:"buyer_id"`
	PropertyID   int64       `json:"property_id"`
	OfferAmount  int64       `json:"offer_amount"`
	OfferDate    time.Time   `json:"offer_date"`
	Status       OfferStatus `json:"status"`
	ResponseDate *time.Time  `json:"response_date,omitempty"`
	Notes        string      `json:"notes"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// NewOffer creates a new pending Offer with the offer date set to now.
// Returns an error if validation fails.
func NewOffer(agentID, buyerID, propertyID, offerAmount int64, notes string) (*Offer, error) {
	offer := &Offer{
		AgentID:     agentID,
		BuyerID:     buyerID,
		PropertyID:  propertyID,
		OfferAmount: offerAmount,
		OfferDate:   time.Now().UTC(),
		Status:      OfferStatusPending,
		Notes:       notes,
	}

	if err := offer.Validate(); err != nil {
		return nil, err
	}

	return offer, nil
}

// Validate checks if the Offer has valid data.
func (o *Offer) Validate() error {
	if o.AgentID <= 0 {
		return ErrEmptyOfferAgent
	}
	if o.BuyerID <= 0 {
		return ErrEmptyOfferBuyer
	}
	if o.PropertyID <= 0 {
		return ErrEmptyOfferProperty
	}
	if o.OfferAmount <= 0 {
		return ErrNonPositiveOffer
	}
	if _, ok := offerStatusByCode[string(o.Status)]; !ok {
		return fmt.Errorf("%w: offer status %q", ErrUnknownCode, o.Status)
	}
	return nil
}
