package models

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// ItemName is a value object representing a normalized item name.
// Encapsulates validation rules: single-spaced, trimmed, 3 <= runes <= 60,
// at least one letter.
type ItemName string

const (
	minItemNameLength = 3
	maxItemNameLength = 60
)

// NormalizeName collapses runs of whitespace to a single space and trims the ends.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NewItemName normalizes s and returns a valid ItemName, or an error if the
// normalized value violates the naming rules.
func NewItemName(s string) (ItemName, error) {
	n := NormalizeName(s)
	length := utf8.RuneCountInString(n)
	if length < minItemNameLength {
		return "", fmt.Errorf("item name must be at least %d characters", minItemNameLength)
	}
	if length > maxItemNameLength {
		return "", fmt.Errorf("item name must not exceed %d characters", maxItemNameLength)
	}
	if !strings.ContainsFunc(n, unicode.IsLetter) {
		return "", fmt.Errorf("item name must contain letters")
	}
	return ItemName(n), nil
}

// String returns the underlying string value.
func (n ItemName) String() string {
	return string(n)
}

// Key returns the Unicode case-folded name. Two names are duplicates exactly
// when their keys are equal; storage enforces uniqueness on this value.
func (n ItemName) Key() string {
	return cases.Fold().String(string(n))
}
