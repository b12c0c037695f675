package domain

import (
	"errors"
	"testing"
)

func TestNewInquiryDefaults(t *testing.T) {
	t.Parallel()
	inquiry, err := NewInquiry("Is the garden fenced?", 1, 2, 3)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if inquiry.Status != InquiryStatusNew {
		t.Errorf("Expected status %q, got %q", InquiryStatusNew, inquiry.Status)
	}
	if inquiry.InquiryType != InquiryTypeGeneral {
		t.Errorf("Expected type %q, got %q", InquiryTypeGeneral, inquiry.InquiryType)
	}
	if inquiry.Priority != InquiryPriorityMedium {
		t.Errorf("Expected priority %q, got %q", InquiryPriorityMedium, inquiry.Priority)
	}
	if inquiry.RespondedAt != nil || inquiry.ClosedAt != nil || inquiry.ResponseTimeMinutes != nil {
		t.Error("Expected response fields to be nil on a new inquiry")
	}
}

func TestNewInquiryValidation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		message    string
		agentID    int64
		buyerID    int64
		propertyID int64
		wantErr    error
	}{
		{"empty message", "  ", 1, 2, 3, ErrEmptyInquiryMessage},
		{"missing agent", "hello", 0, 2, 3, ErrEmptyInquiryAgent},
		{"missing buyer", "hello", 1, 0, 3, ErrEmptyInquiryBuyer},
		{"missing property", "hello", 1, 2, 0, ErrEmptyInquiryProperty},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewInquiry(tc.message, tc.agentID, tc.buyerID, tc.propertyID)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestParseInquiryEnums(t *testing.T) {
	t.Parallel()
	for _, code := range []string{"new", "responded", "closed"} {
		if _, err := ParseInquiryStatus(code); err != nil {
			t.Errorf("Expected status %q to decode, got %v", code, err)
		}
	}
	for _, code := range []string{"general", "viewing", "offer", "question"} {
		if _, err := ParseInquiryType(code); err != nil {
			t.Errorf("Expected type %q to decode, got %v", code, err)
		}
	}
	for _, code := range []string{"low", "medium", "high"} {
		if _, err := ParseInquiryPriority(code); err != nil {
			t.Errorf("Expected priority %q to decode, got %v", code, err)
		}
	}

	if _, err := ParseInquiryStatus("archived"); !errors.Is(err, ErrUnknownCode) {
		t.Errorf("Expected ErrUnknownCode for unknown status, got %v", err)
	}
	if _, err := ParseInquiryType("complaint"); !errors.Is(err, ErrUnknownCode) {
		t.Errorf("Expected ErrUnknownCode for unknown type, got %v", err)
	}
	if _, err := ParseInquiryPriority("urgent"); !errors.Is(err, ErrUnknownCode) {
		t.Errorf("Expected ErrUnknownCode for unknown priority, got %v", err)
	}
}
