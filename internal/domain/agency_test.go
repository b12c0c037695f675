package domain

import (
	"errors"
	"testing"
)

func TestNewAgency(t *testing.T) {
	t.Parallel()
	agency, err := NewAgency("Villa Realty", "48 Shore Rd", "555-0142")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if agency.ID != 0 {
		t.Errorf("Expected zero ID before store assignment, got %d", agency.ID)
	}
	if agency.Name != "Villa Realty" {
		t.Errorf("Expected name %q, got %q", "Villa Realty", agency.Name)
	}
}

func TestNewAgencyValidation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		agName  string
		address string
		phone   string
		wantErr error
	}{
		{"empty name", "", "48 Shore Rd", "555-0142", ErrEmptyAgencyName},
		{"blank name", "   ", "48 Shore Rd", "555-0142", ErrEmptyAgencyName},
		{"empty address", "Villa Realty", "", "555-0142", ErrEmptyAgencyAddress},
		{"empty phone", "Villa Realty", "48 Shore Rd", "", ErrEmptyAgencyPhone},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewAgency(tc.agName, tc.address, tc.phone)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
