// Package services contains stateless domain services for the catalog bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"math"
	"strings"

	catalogdomain "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/models"
)

// bannedTokens is a coarse placeholder content gate, matched as lower-case
// substrings of the normalized name. It is not a moderation system; pending
// items are still reviewed by a human before they become public.
var bannedTokens = []string{"kill", "hate", "slur"}

// Candidate is an unvalidated submission as received from a client.
// A nil Weight means the client omitted it.
type Candidate struct {
	Name     string
	Category string
	IsHalf   bool
	Weight   *float64
}

// Descriptor is a normalized, validated item description ready to persist.
type Descriptor struct {
	Name     models.ItemName
	Category models.Category
	IsHalf   bool
	Weight   float64
}

// ValidateSubmission checks, in order, the name, category, weight and content
// gate, returning the first failure wrapped in its domain sentinel.
func ValidateSubmission(c Candidate) (Descriptor, error) {
	name, err := models.NewItemName(c.Name)
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidName, err)
	}

	category := models.Category(c.Category)
	if !category.Valid() {
		return Descriptor{}, fmt.Errorf("%w: category must be one of %v", catalogdomain.ErrInvalidCategory, models.Categories())
	}

	weight := models.DefaultWeight
	if c.Weight != nil {
		weight = *c.Weight
	}
	if err := ValidateWeight(weight); err != nil {
		return Descriptor{}, err
	}

	if err := CheckContent(name); err != nil {
		return Descriptor{}, err
	}

	return Descriptor{Name: name, Category: category, IsHalf: c.IsHalf, Weight: weight}, nil
}

// ValidateWeight enforces 0 < w <= models.MaxWeight.
func ValidateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 || w > models.MaxWeight {
		return fmt.Errorf("%w: weight must be greater than 0 and at most %g", catalogdomain.ErrInvalidWeight, models.MaxWeight)
	}
	return nil
}

// CheckContent rejects names containing a banned token, case-insensitively.
func CheckContent(name models.ItemName) error {
	lowered := strings.ToLower(name.String())
	for _, token := range bannedTokens {
		if strings.Contains(lowered, token) {
			return catalogdomain.ErrContentRejected
		}
	}
	return nil
}
