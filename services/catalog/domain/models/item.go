package models

import "time"

// Status is the moderation lifecycle state of an Item.
type Status string

const (
	StatusApproved Status = "approved"
	StatusPending  Status = "pending"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusApproved || s == StatusPending || s == StatusRejected
}

const (
	// DefaultWeight is used when a submission omits the weight.
	DefaultWeight = 1.0
	// MaxWeight is the inclusive upper bound for item weights.
	MaxWeight = 5.0
)

// Item is the catalog aggregate.
type Item struct {
	ID        int64
	Name      ItemName
	Category  Category
	IsHalf    bool
	Weight    float64
	Status    Status
	CreatedBy string // optional attribution; empty when unknown
	CreatedAt time.Time
}

// NewItem constructs an Item that has not been persisted yet (ID is zero).
func NewItem(name ItemName, category Category, isHalf bool, weight float64, status Status, now time.Time) *Item {
	return &Item{
		Name:      name,
		Category:  category,
		IsHalf:    isHalf,
		Weight:    weight,
		Status:    status,
		CreatedAt: now.UTC(),
	}
}

// PublicItem is the projection exposed by the HTTP API.
type PublicItem struct {
	ID       int64    `json:"id"       example:"3"`
	Name     string   `json:"name"     example:"Cold shower"`
	Category Category `json:"category" example:"Physical/Discipline"`
	IsHalf   bool     `json:"is_half"  example:"false"`
	Weight   float64  `json:"weight"   example:"1"`
} // @name PublicItem

// Public returns the public projection of the item.
func (i *Item) Public() PublicItem {
	return PublicItem{
		ID:       i.ID,
		Name:     i.Name.String(),
		Category: i.Category,
		IsHalf:   i.IsHalf,
		Weight:   i.Weight,
	}
}
