package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/database"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/events"
	catalogdomain "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain"
	domainevents "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/events"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/models"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/infrastructure/persistence/postgres/db"
)

const uniqueViolation = "23505"

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection pool
// and event bus. The bus publishes an ItemSubmittedEvent with every saved
// submission; a nil bus disables publishing.
func NewItemRepository(database *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: database, bus: bus}
}

// ListByStatus returns items with the given status ordered by id.
func (r *ItemRepository) ListByStatus(ctx context.Context, status models.Status) ([]*models.Item, error) {
	rows, err := db.New(r.db.DB()).ListItemsByStatus(ctx, db.ItemStatus(status))
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	items := make([]*models.Item, len(rows))
	for i, row := range rows {
		items[i] = rowToItem(row)
	}
	return items, nil
}

// NameExists reports whether name is taken, ignoring case.
func (r *ItemRepository) NameExists(ctx context.Context, name models.ItemName) (bool, error) {
	exists, err := db.New(r.db.DB()).ItemNameExists(ctx, name.Key())
	if err != nil {
		return false, fmt.Errorf("check item name: %w", err)
	}
	return exists, nil
}

// CountSubmissionsSince counts submissions from ipHash after since.
func (r *ItemRepository) CountSubmissionsSince(ctx context.Context, ipHash string, since time.Time) (int, error) {
	n, err := db.New(r.db.DB()).CountSubmissionsSince(ctx, db.CountSubmissionsSinceParams{
		CreatedIpHash: nullString(ipHash),
		CreatedAt:     since,
	})
	if err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	return int(n), nil
}

// SaveSubmission persists the pending item, its audit record and the
// ItemSubmittedEvent within one transaction.
// Returns ErrDuplicateItem on unique constraint violations.
func (r *ItemRepository) SaveSubmission(ctx context.Context, item *models.Item, sub *models.Submission) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		id, err := insertItem(ctx, q, item)
		if err != nil {
			return err
		}

		subID, err := q.InsertSubmission(ctx, db.InsertSubmissionParams{
			ItemID:        id,
			CreatedIpHash: nullString(sub.CreatedIPHash),
			CreatedAt:     sub.CreatedAt,
		})
		if err != nil {
			return fmt.Errorf("insert submission: %w", err)
		}

		item.ID = id
		sub.ID = subID
		sub.ItemID = id

		if r.bus != nil {
			if err := r.publishSubmitted(ctx, tx, item); err != nil {
				return fmt.Errorf("publish item submitted: %w", err)
			}
		}
		return nil
	})
}

// Insert persists a single item.
func (r *ItemRepository) Insert(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		id, err := insertItem(ctx, db.New(tx), item)
		if err != nil {
			return err
		}
		item.ID = id
		return nil
	})
}

// SetStatus updates an item's moderation status.
func (r *ItemRepository) SetStatus(ctx context.Context, id int64, status models.Status) error {
	n, err := db.New(r.db.DB()).SetItemStatus(ctx, db.SetItemStatusParams{
		ID:     id,
		Status: db.ItemStatus(status),
	})
	if err != nil {
		return fmt.Errorf("update item status: %w", err)
	}
	if n == 0 {
		return catalogdomain.ErrItemNotFound
	}
	return nil
}

func insertItem(ctx context.Context, q *db.Queries, item *models.Item) (int64, error) {
	id, err := q.InsertItem(ctx, db.InsertItemParams{
		Name:      item.Name.String(),
		NameKey:   item.Name.Key(),
		Category:  string(item.Category),
		IsHalf:    item.IsHalf,
		Weight:    item.Weight,
		Status:    db.ItemStatus(item.Status),
		CreatedBy: nullString(item.CreatedBy),
		CreatedAt: item.CreatedAt,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, catalogdomain.ErrDuplicateItem
		}
		return 0, fmt.Errorf("insert item: %w", err)
	}
	return id, nil
}

func (r *ItemRepository) publishSubmitted(ctx context.Context, tx *sql.Tx, item *models.Item) error {
	event := domainevents.ItemSubmittedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		Name:       item.Name.String(),
		Category:   string(item.Category),
		IsHalf:     item.IsHalf,
		Weight:     item.Weight,
		OccurredAt: item.CreatedAt,
	}
	msg, err := events.NewJSONMessage(event.EventID.String(), event.Version, event)
	if err != nil {
		return err
	}
	return r.bus.PublishTx(ctx, tx, domainevents.TopicItemSubmitted, msg)
}

// rowToItem maps a db.Item to a domain models.Item.
func rowToItem(row db.Item) *models.Item {
	return &models.Item{
		ID:        row.ID,
		Name:      models.ItemName(row.Name),
		Category:  models.Category(row.Category),
		IsHalf:    row.IsHalf,
		Weight:    row.Weight,
		Status:    models.Status(row.Status),
		CreatedBy: row.CreatedBy.String,
		CreatedAt: row.CreatedAt.UTC(),
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
