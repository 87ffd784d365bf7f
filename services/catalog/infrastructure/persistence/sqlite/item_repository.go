// Package sqlite implements the catalog repositories on SQLite for local
// development, the hardctl CLI and tests.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/database"
	catalogdomain "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/models"
)

// timeLayout is fixed-width so stored timestamps compare correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

const itemColumns = `id, name, category, is_half, weight, status, created_by, created_at`

// ItemRepository implements repositories.ItemRepository against SQLite.
type ItemRepository struct {
	db *database.Database
}

// NewItemRepository returns an ItemRepository backed by db.
func NewItemRepository(db *database.Database) *ItemRepository {
	return &ItemRepository{db: db}
}

// ListByStatus returns items with the given status ordered by id.
func (r *ItemRepository) ListByStatus(ctx context.Context, status models.Status) ([]*models.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE status = ? ORDER BY id`, string(status),
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// NameExists reports whether name is taken, ignoring case.
func (r *ItemRepository) NameExists(ctx context.Context, name models.ItemName) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM items WHERE name_key = ?)`, name.Key(),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking item name: %w", err)
	}
	return exists, nil
}

// CountSubmissionsSince counts submissions from ipHash after since.
func (r *ItemRepository) CountSubmissionsSince(ctx context.Context, ipHash string, since time.Time) (int, error) {
	var n int
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM submissions WHERE created_ip_hash = ? AND created_at > ?`,
		ipHash, formatTime(since),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting submissions: %w", err)
	}
	return n, nil
}

// SaveSubmission inserts the pending item and its audit record in one transaction.
func (r *ItemRepository) SaveSubmission(ctx context.Context, item *models.Item, sub *models.Submission) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		id, err := insertItem(ctx, tx, item)
		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO submissions (item_id, created_ip_hash, created_at) VALUES (?, ?, ?)`,
			id, nullString(sub.CreatedIPHash), formatTime(sub.CreatedAt),
		)
		if err != nil {
			return fmt.Errorf("creating submission: %w", err)
		}
		subID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting submission id: %w", err)
		}

		item.ID = id
		sub.ID = subID
		sub.ItemID = id
		return nil
	})
}

// Insert persists a single item.
func (r *ItemRepository) Insert(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		id, err := insertItem(ctx, tx, item)
		if err != nil {
			return err
		}
		item.ID = id
		return nil
	})
}

// SetStatus updates an item's moderation status.
func (r *ItemRepository) SetStatus(ctx context.Context, id int64, status models.Status) error {
	res, err := r.db.DB().ExecContext(ctx, `UPDATE items SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("updating item status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating item status: %w", err)
	}
	if n == 0 {
		return catalogdomain.ErrItemNotFound
	}
	return nil
}

func insertItem(ctx context.Context, tx *sql.Tx, item *models.Item) (int64, error) {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO items (name, name_key, category, is_half, weight, status, created_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.Name.String(), item.Name.Key(), string(item.Category), item.IsHalf, item.Weight, string(item.Status),
		nullString(item.CreatedBy), formatTime(item.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, catalogdomain.ErrDuplicateItem
		}
		return 0, fmt.Errorf("creating item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting item id: %w", err)
	}
	return id, nil
}

func scanItem(rows *sql.Rows) (*models.Item, error) {
	var (
		item                          models.Item
		name, category, status, stamp string
		createdBy                     sql.NullString
	)
	if err := rows.Scan(&item.ID, &name, &category, &item.IsHalf, &item.Weight, &status, &createdBy, &stamp); err != nil {
		return nil, fmt.Errorf("scanning item: %w", err)
	}
	createdAt, err := time.Parse(timeLayout, stamp)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at %q: %w", stamp, err)
	}
	item.Name = models.ItemName(name)
	item.Category = models.Category(category)
	item.Status = models.Status(status)
	item.CreatedBy = createdBy.String
	item.CreatedAt = createdAt
	return &item, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
		(code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "UNIQUE"))
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
