package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// FeatureCategory groups property features.
type FeatureCategory string

// Possible feature category values
const (
	FeatureCategoryIndoor  FeatureCategory = "Indoor"
	FeatureCategoryOutdoor FeatureCategory = "Outdoor"
	FeatureCategoryAmenity FeatureCategory = "Amenity"
)

var featureCategoryByCode = map[string]FeatureCategory{
	"indoor":  FeatureCategoryIndoor,
	"outdoor": FeatureCategoryOutdoor,
	"amenity": FeatureCategoryAmenity,
}

// ParseFeatureCategory decodes a stored code into a FeatureCategory.
// Returns an error wrapping ErrUnknownCode for unrecognized codes.
func ParseFeatureCategory(code string) (FeatureCategory, error) {
	c, ok := featureCategoryByCode[strings.ToLower(code)]
	if !ok {
		return "", fmt.Errorf("%w: feature category %q", ErrUnknownCode, code)
	}
	return c, nil
}

// ErrEmptyFeatureName is returned when a feature has no name.
var ErrEmptyFeatureName = errors.New("feature name cannot be empty")

// Feature represents an attribute a property can expose, such as a pool or
// hardwood floors.
type Feature struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    FeatureCategory `json:"category"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewFeature creates a new Feature in the given category.
// Returns an error if validation fails.
func NewFeature(name string, category FeatureCategory, description string) (*Feature, error) {
	feature := &Feature{
		Name:        name,
		Category:    category,
		Description: description,
	}

	if err := feature.Validate(); err != nil {
		return nil, err
	}

	return feature, nil
}

// Validate checks if the Feature has valid data.
func (f *Feature) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrEmptyFeatureName
	}
	if _, ok := featureCategoryByCode[strings.ToLower(string(f.Category))]; !ok {
		return fmt.Errorf("%w: feature category %q", ErrUnknownCode, f.Category)
	}
	return nil
}
