package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// InquiryStatus represents the handling state of an inquiry.
type InquiryStatus string

// Possible inquiry status values
const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusResponded InquiryStatus = "responded"
	InquiryStatusClosed    InquiryStatus = "closed"
)

// InquiryType classifies what the buyer is asking for.
type InquiryType string

// Possible inquiry type values
const (
	InquiryTypeGeneral  InquiryType = "general"
	InquiryTypeViewing  InquiryType = "viewing"
	InquiryTypeOffer    InquiryType = "offer"
	InquiryTypeQuestion InquiryType = "question"
)

// InquiryPriority ranks how urgently an inquiry should be handled.
type InquiryPriority string

// Possible inquiry priority values
const (
	InquiryPriorityLow    InquiryPriority = "low"
	InquiryPriorityMedium InquiryPriority = "medium"
	InquiryPriorityHigh   InquiryPriority = "high"
)

var inquiryStatusByCode = map[string]InquiryStatus{
	string(InquiryStatusNew):       InquiryStatusNew,
	string(InquiryStatusResponded): InquiryStatusResponded,
	string(InquiryStatusClosed):    InquiryStatusClosed,
}

var inquiryTypeByCode = map[string]InquiryType{
	string(InquiryTypeGeneral):  InquiryTypeGeneral,
	string(InquiryTypeViewing):  InquiryTypeViewing,
	string(InquiryTypeOffer):    InquiryTypeOffer,
	string(InquiryTypeQuestion): InquiryTypeQuestion,
}

var inquiryPriorityByCode = map[string]InquiryPriority{
	string(InquiryPriorityLow):    InquiryPriorityLow,
	string(InquiryPriorityMedium): InquiryPriorityMedium,
	string(InquiryPriorityHigh):   InquiryPriorityHigh,
}

// ParseInquiryStatus decodes a stored code into an InquiryStatus.
// Returns an error wrapping ErrUnknownCode for unrecognized codes.
func ParseInquiryStatus(code string) (InquiryStatus, error) {
	s, ok := inquiryStatusByCode[strings.ToLower(code)]
	if !ok {
		return "", fmt.Errorf("%w: inquiry status %q", ErrUnknownCode, code)
	}
	return s, nil
}

// ParseInquiryType decodes a stored code into an InquiryType.
// Returns an error wrapping ErrUnknownCode for unrecognized codes.
func ParseInquiryType(code string) (InquiryType, error) {
	t, ok := inquiryTypeByCode[strings.ToLower(code)]
	if !ok {
		return "", fmt.Errorf("%w: inquiry type %q", ErrUnknownCode, code)
	}
	return t, nil
}

// ParseInquiryPriority decodes a stored code into an InquiryPriority.
// Returns an error wrapping ErrUnknownCode for unrecognized codes.
func ParseInquiryPriority(code string) (InquiryPriority, error) {
	p, ok := inquiryPriorityByCode[strings.ToLower(code)]
	if !ok {
		return "", fmt.Errorf("%w: inquiry priority %q", ErrUnknownCode, code)
	}
	return p, nil
}

// Common validation errors for Inquiry
var (
	ErrEmptyInquiryMessage  = errors.New("inquiry message cannot be empty")
	ErrEmptyInquiryAgent    = errors.New("inquiry agent ID cannot be empty")
	ErrEmptyInquiryBuyer    = errors.New("inquiry buyer ID cannot be empty")
	ErrEmptyInquiryProperty = errors.New("inquiry property ID cannot be empty")
)

// Inquiry represents a buyer's question about a property, routed to an
// agent. ResponseTimeMinutes is nil until the inquiry is responded to.
type Inquiry struct {
	ID                  int64           `json:"id"`
	CreatedAt           time.Time       `json:"created_at"`
	Message             string          `json:"message"`
	Status              InquiryStatus   `json:"status"`
	AgentID             int64           `json:"agent_id"`
	BuyerID             int64           `json:"buyer_id"`
	PropertyID          int64           `json:"property_id"`
	RespondedAt         *time.Time      `json:"responded_at,omitempty"`
	ClosedAt            *time.Time      `json:"closed_at,omitempty"`
	ResponseTimeMinutes *int            `json:"response_time_minutes,omitempty"`
	InquiryType         InquiryType     `json:"inquiry_type"`
	Priority            InquiryPriority `json:"priority"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// NewInquiry creates a new Inquiry in status new with type general and
// medium priority.
// Returns an error if validation fails.
func NewInquiry(message string, agentID, buyerID, propertyID int64) (*Inquiry, error) {
	inquiry := &Inquiry{
		Message:     message,
		Status:      InquiryStatusNew,
		AgentID:     agentID,
		BuyerID:     buyerID,
		PropertyID:  propertyID,
		InquiryType: InquiryTypeGeneral,
		Priority:    InquiryPriorityMedium,
		CreatedAt:   time.Now().UTC(),
	}

	if err := inquiry.Validate(); err != nil {
		return nil, err
	}

	return inquiry, nil
}

// Validate checks if the Inquiry has valid data.
func (i *Inquiry) Validate() error {
	if strings.TrimSpace(i.Message) == "" {
		return ErrEmptyInquiryMessage
	}
	if i.AgentID <= 0 {
		return ErrEmptyInquiryAgent
	}
	if i.BuyerID <= 0 {
		return ErrEmptyInquiryBuyer
	}
	if i.PropertyID <= 0 {
		return ErrEmptyInquiryProperty
	}
	if _, ok := inquiryStatusByCode[string(i.Status)]; !ok {
		return fmt.Errorf("%w: inquiry status %q", ErrUnknownCode, i.Status)
	}
	if _, ok := inquiryTypeByCode[string(i.InquiryType)]; !ok {
		return fmt.Errorf("%w: inquiry type %q", ErrUnknownCode, i.InquiryType)
	}
	if _, ok := inquiryPriorityByCode[string(i.Priority)]; !ok {
		return fmt.Errorf("%w: inquiry priority %q", ErrUnknownCode, i.Priority)
	}
	return nil
}
