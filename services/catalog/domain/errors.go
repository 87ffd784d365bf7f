package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrInvalidName indicates the item name fails normalization rules.
	ErrInvalidName = errors.New("invalid item name")

	// ErrInvalidCategory indicates the category is not in the fixed set.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidWeight indicates the weight is outside (0, 5.0].
	ErrInvalidWeight = errors.New("invalid weight")

	// ErrContentRejected indicates the name contains a denylisted token.
	ErrContentRejected = errors.New("name failed content checks")

	// ErrDuplicateItem indicates an item with the same name (case-insensitive) exists.
	ErrDuplicateItem = errors.New("that item already exists")

	// ErrRateLimitExceeded indicates the submitter hit the rolling submission limit.
	ErrRateLimitExceeded = errors.New("rate limit exceeded, try again tomorrow")

	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")
)
