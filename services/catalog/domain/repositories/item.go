package repositories

import (
	"context"
	"time"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/models"
)

// ItemRepository is the persistence interface for catalog items and the
// submission audit log. The domain layer owns this interface; infrastructure
// implements it for each storage driver.
type ItemRepository interface {
	// ListByStatus returns items with the given status ordered by id ascending.
	ListByStatus(ctx context.Context, status models.Status) ([]*models.Item, error)

	// NameExists reports whether any item already uses name, compared
	// case-insensitively.
	NameExists(ctx context.Context, name models.ItemName) (bool, error)

	// CountSubmissionsSince counts audit records for ipHash created strictly after since.
	CountSubmissionsSince(ctx context.Context, ipHash string, since time.Time) (int, error)

	// SaveSubmission atomically inserts item and its audit record, filling in
	// item.ID and sub.ID/ItemID. A unique-name violation returns ErrDuplicateItem.
	SaveSubmission(ctx context.Context, item *models.Item, sub *models.Submission) error

	// Insert persists a single item outside the submission flow (seeding).
	Insert(ctx context.Context, item *models.Item) error

	// SetStatus changes the moderation status of an item. Returns ErrItemNotFound
	// when no item has the given id.
	SetStatus(ctx context.Context, id int64, status models.Status) error
}
