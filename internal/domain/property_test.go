package domain

import (
	"errors"
	"testing"
)

func TestParsePropertyTypeRoundTrip(t *testing.T) {
	t.Parallel()
	for _, pt := range PropertyTypes() {
		decoded, err := ParsePropertyType(string(pt))
		if err != nil {
			t.Fatalf("Expected no error for code %q, got %v", pt, err)
		}
		if decoded != pt {
			t.Errorf("Expected %q to decode to itself, got %q", pt, decoded)
		}
	}
}

func TestParsePropertyTypeCaseInsensitive(t *testing.T) {
	t.Parallel()
	decoded, err := ParsePropertyType("CONDO")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if decoded != PropertyTypeCondo {
		t.Errorf("Expected %q, got %q", PropertyTypeCondo, decoded)
	}
}

func TestParsePropertyTypeUnknownCode(t *testing.T) {
	t.Parallel()
	_, err := ParsePropertyType("castle")
	if err == nil {
		t.Fatal("Expected error for unknown code, got nil")
	}
	if !errors.Is(err, ErrUnknownCode) {
		t.Errorf("Expected ErrUnknownCode, got %v", err)
	}
}

func TestParsePropertyStatusRoundTrip(t *testing.T) {
	t.Parallel()
	for _, ps := range PropertyStatuses() {
		decoded, err := ParsePropertyStatus(string(ps))
		if err != nil {
			t.Fatalf("Expected no error for code %q, got %v", ps, err)
		}
		if decoded != ps {
			t.Errorf("Expected %q to decode to itself, got %q", ps, decoded)
		}
	}
}

func TestParsePropertyStatusUnknownCode(t *testing.T) {
	t.Parallel()
	_, err := ParsePropertyStatus("demolished")
	if !errors.Is(err, ErrUnknownCode) {
		t.Errorf("Expected ErrUnknownCode, got %v", err)
	}
}

func TestNewProperty(t *testing.T) {
	t.Parallel()
	property, err := NewProperty(
		"Sunny Loft", "Top floor loft with terrace", "12 Hill St",
		"Downtown", "North", PropertyTypeApartment, 250000,
	)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if property.Status != PropertyStatusAvailable {
		t.Errorf("Expected status %q, got %q", PropertyStatusAvailable, property.Status)
	}
	if property.ListingDate.IsZero() {
		t.Error("Expected non-zero listing date")
	}
	if property.SoldDate != nil {
		t.Error("Expected nil sold date on a new listing")
	}
}

func TestNewPropertyValidation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		title   string
		address string
		price   int64
		ptype   PropertyType
		wantErr error
	}{
		{"empty title", "", "12 Hill St", 250000, PropertyTypeHouse, ErrEmptyPropertyTitle},
		{"empty address", "Sunny Loft", "", 250000, PropertyTypeHouse, ErrEmptyPropertyAddress},
		{"zero price", "Sunny Loft", "12 Hill St", 0, PropertyTypeHouse, ErrNonPositivePrice},
		{"negative price", "Sunny Loft", "12 Hill St", -5, PropertyTypeHouse, ErrNonPositivePrice},
		{"unknown type", "Sunny Loft", "12 Hill St", 250000, PropertyType("castle"), ErrInvalidPropertyType},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewProperty(tc.title, "", tc.address, "", "", tc.ptype, tc.price)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
