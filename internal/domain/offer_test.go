package domain

import (
	"errors"
	"testing"
)

func TestNewOfferDefaults(t *testing.T) {
	t.Parallel()
	offer, err := NewOffer(1, 2, 3, 480000, "subject to inspection")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if offer.Status != OfferStatusPending {
		t.Errorf("Expected status %q, got %q", OfferStatusPending, offer.Status)
	}
	if offer.OfferDate.IsZero() {
		t.Error("Expected non-zero offer date")
	}
	if offer.ResponseDate != nil {
		t.Error("Expected nil response date on a new offer")
	}
}

func TestNewOfferValidation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		agentID int64
		buyerID int64
		propID  int64
		amount  int64
		wantErr error
	}{
		{"missing agent", 0, 2, 3, 480000, ErrEmptyOfferAgent},
		{"missing buyer", 1, 0, 3, 480000, ErrEmptyOfferBuyer},
		{"missing property", 1, 2, 0, 480000, ErrEmptyOfferProperty},
		{"zero amount", 1, 2, 3, 0, ErrNonPositiveOffer},
		{"negative amount", 1, 2, 3, -100, ErrNonPositiveOffer},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewOffer(tc.agentID, tc.buyerID, tc.propID, tc.amount, "")
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestParseOfferStatus(t *testing.T) {
	t.Parallel()
	for _, code := range []string{"pending", "accepted", "rejected", "withdrawn"} {
		decoded, err := ParseOfferStatus(code)
		if err != nil {
			t.Fatalf("Expected status %q to decode, got %v", code, err)
		}
		if string(decoded) != code {
			t.Errorf("Expected %q to decode to itself, got %q", code, decoded)
		}
	}

	if _, err := ParseOfferStatus("expired"); !errors.Is(err, ErrUnknownCode) {
		t.Errorf("Expected ErrUnknownCode, got %v", err)
	}
}
