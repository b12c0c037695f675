package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// PropertyType classifies a property listing.
type PropertyType string

// Possible property type values
const (
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeCondo      PropertyType = "condo"
	PropertyTypeTownhouse  PropertyType = "townhouse"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypeCommercial PropertyType = "commercial"
)

// PropertyStatus represents the sales state of a property.
type PropertyStatus string

// Possible property status values
const (
	PropertyStatusAvailable  PropertyStatus = "available"
	PropertyStatusUnderOffer PropertyStatus = "under_offer"
	PropertyStatusSold       PropertyStatus = "sold"
)

// Decode tables built once; lookup is case-insensitive and strict.
var propertyTypeByCode = map[string]PropertyType{
	string(PropertyTypeApartment):  PropertyTypeApartment,
	string(PropertyTypeHouse):      PropertyTypeHouse,
	string(PropertyTypeCondo):      PropertyTypeCondo,
	string(PropertyTypeTownhouse):  PropertyTypeTownhouse,
	string(PropertyTypeLand):       PropertyTypeLand,
	string(PropertyTypeCommercial): PropertyTypeCommercial,
}

var propertyStatusByCode = map[string]PropertyStatus{
	string(PropertyStatusAvailable):  PropertyStatusAvailable,
	string(PropertyStatusUnderOffer): PropertyStatusUnderOffer,
	string(PropertyStatusSold):       PropertyStatusSold,
}

// ParsePropertyType decodes a stored code into a PropertyType.
// Returns an error wrapping ErrUnknownCode for unrecognized codes.
func ParsePropertyType(code string) (PropertyType, error) {
	t, ok := propertyTypeByCode[strings.ToLower(code)]
	if !ok {
		return "", fmt.Errorf("%w: property type %q", ErrUnknownCode, code)
	}
	return t, nil
}

// ParsePropertyStatus decodes a stored code into a PropertyStatus.
// Returns an error wrapping ErrUnknownCode for unrecognized codes.
func ParsePropertyStatus(code string) (PropertyStatus, error) {
	s, ok := propertyStatusByCode[strings.ToLower(code)]
	if !ok {
		return "", fmt.Errorf("%w: property status %q", ErrUnknownCode, code)
	}
	return s, nil
}

// PropertyTypes returns all defined property types.
func PropertyTypes() []PropertyType {
	return []PropertyType{
		PropertyTypeApartment,
		PropertyTypeHouse,
		PropertyTypeCondo,
		PropertyTypeTownhouse,
		PropertyTypeLand,
		PropertyTypeCommercial,
	}
}

// PropertyStatuses returns all defined property statuses.
func PropertyStatuses() []PropertyStatus {
	return []PropertyStatus{
		PropertyStatusAvailable,
		PropertyStatusUnderOffer,
		PropertyStatusSold,
	}
}

// Common validation errors for Property
var (
	ErrEmptyPropertyTitle   = errors.New("property title cannot be empty")
	ErrEmptyPropertyAddress = errors.New("property address cannot be empty")
	ErrNonPositivePrice     = errors.New("property price must be positive")
	ErrInvalidPropertyType  = errors.New("invalid property type")
)

// Property represents a property listing. Prices are integer currency units.
// ListingDate is set at creation and immutable; SoldDate is set externally
// when the status moves to sold. DaysOnMarket is derived by the store and
// read-only on the entity.
type Property struct {
	ID           int64          `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Address      string         `json:"address"`
	Neighborhood string         `json:"neighborhood"`
	Region       string         `json:"region"`
	PropertyType PropertyType   `json:"property_type"`
	ListingDate  time.Time      `json:"listing_date"`
	CurrentPrice int64          `json:"current_price"`
	Status       PropertyStatus `json:"status"`
	SoldDate     *time.Time     `json:"sold_date,omitempty"`
	DaysOnMarket int            `json:"days_on_market"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// NewProperty creates a new Property listing with status available and the
// listing date set to now. The ID is left zero until the store assigns one.
// Returns an error if validation fails.
func NewProperty(
	title, description, address, neighborhood, region string,
	propertyType PropertyType,
	currentPrice int64,
) (*Property, error) {
	property := &Property{
		Title:        title,
		Description:  description,
		Address:      address,
		Neighborhood: neighborhood,
		Region:       region,
		PropertyType: propertyType,
		ListingDate:  time.Now().UTC(),
		CurrentPrice: currentPrice,
		Status:       PropertyStatusAvailable,
	}

	if err := property.Validate(); err != nil {
		return nil, err
	}

	return property, nil
}

// Validate checks if the Property has valid data.
// Returns an error if any field fails validation.
func (p *Property) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyPropertyTitle
	}
	if strings.TrimSpace(p.Address) == "" {
		return ErrEmptyPropertyAddress
	}
	if p.CurrentPrice <= 0 {
		return ErrNonPositivePrice
	}
	if _, ok := propertyTypeByCode[string(p.PropertyType)]; !ok {
		return ErrInvalidPropertyType
	}
	if _, ok := propertyStatusByCode[string(p.Status)]; !ok {
		return fmt.Errorf("%w: property status %q", ErrUnknownCode, p.Status)
	}
	return nil
}
