package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/database/dbtest"
	catalogdomain "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/models"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/infrastructure/persistence/sqlite"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newItem(name string, status models.Status, half bool) *models.Item {
	return models.NewItem(models.ItemName(name), models.CategoryPhysical, half, 1.5, status, t0)
}

func TestInsertAndListByStatus(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewItemRepository(dbtest.NewSQLite(t))

	for _, it := range []*models.Item{
		newItem("Cold shower", models.StatusApproved, false),
		newItem("Ten pushups", models.StatusPending, true),
		newItem("Read a chapter", models.StatusApproved, true),
	} {
		if err := repo.Insert(ctx, it); err != nil {
			t.Fatalf("insert %q: %v", it.Name, err)
		}
		if it.ID == 0 {
			t.Fatalf("insert %q: id not assigned", it.Name)
		}
	}

	approved, err := repo.ListByStatus(ctx, models.StatusApproved)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(approved) != 2 {
		t.Fatalf("expected 2 approved items, got %d", len(approved))
	}
	if approved[0].ID >= approved[1].ID {
		t.Errorf("expected id ascending order, got %d then %d", approved[0].ID, approved[1].ID)
	}

	got := approved[1]
	if got.Name != "Read a chapter" || !got.IsHalf || got.Weight != 1.5 || got.Category != models.CategoryPhysical {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(t0) {
		t.Errorf("created_at: got %v, want %v", got.CreatedAt, t0)
	}
}

func TestListByStatus_EmptyIsNotAnError(t *testing.T) {
	repo := sqlite.NewItemRepository(dbtest.NewSQLite(t))
	items, err := repo.ListByStatus(context.Background(), models.StatusApproved)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestNameExists_CaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewItemRepository(dbtest.NewSQLite(t))
	for _, name := range []string{"Cold Shower", "Éclair sprint"} {
		if err := repo.Insert(ctx, newItem(name, models.StatusRejected, false)); err != nil {
			t.Fatalf("insert %q: %v", name, err)
		}
	}

	tests := []struct {
		name string
		want bool
	}{
		{"Cold Shower", true},
		{"cold shower", true},
		{"COLD SHOWER", true},
		{"Cold showers", false},
		{"éclair sprint", true},
		{"ÉCLAIR SPRINT", true},
		{"Eclair sprint", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.NameExists(ctx, models.ItemName(tt.name))
			if err != nil {
				t.Fatalf("NameExists: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInsert_DuplicateNameIgnoringCase(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewItemRepository(dbtest.NewSQLite(t))
	if err := repo.Insert(ctx, newItem("Cold shower", models.StatusApproved, false)); err != nil {
		t.Fatalf("insert: %v", err)
	}
	err := repo.Insert(ctx, newItem("COLD SHOWER", models.StatusPending, false))
	if !errors.Is(err, catalogdomain.ErrDuplicateItem) {
		t.Fatalf("expected ErrDuplicateItem, got %v", err)
	}
}

func TestInsert_DuplicateNonASCIINameIgnoringCase(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewItemRepository(dbtest.NewSQLite(t))
	if err := repo.Insert(ctx, newItem("Éclair sprint", models.StatusPending, false)); err != nil {
		t.Fatalf("insert: %v", err)
	}
	err := repo.Insert(ctx, newItem("éclair sprint", models.StatusPending, false))
	if !errors.Is(err, catalogdomain.ErrDuplicateItem) {
		t.Fatalf("expected ErrDuplicateItem, got %v", err)
	}
}

func TestSaveSubmission(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewItemRepository(dbtest.NewSQLite(t))

	item := newItem("Wake at five", models.StatusPending, false)
	sub := &models.Submission{CreatedIPHash: "abc", CreatedAt: t0}
	if err := repo.SaveSubmission(ctx, item, sub); err != nil {
		t.Fatalf("SaveSubmission: %v", err)
	}
	if item.ID == 0 || sub.ID == 0 || sub.ItemID != item.ID {
		t.Fatalf("ids not populated: item=%d sub=%d sub.item=%d", item.ID, sub.ID, sub.ItemID)
	}

	pending, err := repo.ListByStatus(ctx, models.StatusPending)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != item.ID {
		t.Fatalf("expected the submitted item to be pending, got %+v", pending)
	}
}

func TestSaveSubmission_DuplicateWritesNothing(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewItemRepository(dbtest.NewSQLite(t))
	if err := repo.Insert(ctx, newItem("Wake at five", models.StatusApproved, false)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	err := repo.SaveSubmission(ctx, newItem("wake at five", models.StatusPending, false), &models.Submission{CreatedIPHash: "abc", CreatedAt: t0})
	if !errors.Is(err, catalogdomain.ErrDuplicateItem) {
		t.Fatalf("expected ErrDuplicateItem, got %v", err)
	}

	n, err := repo.CountSubmissionsSince(ctx, "abc", t0.Add(-time.Hour))
	if err != nil {
		t.Fatalf("CountSubmissionsSince: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no audit record after failed save, got %d", n)
	}
}

func TestCountSubmissionsSince(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewItemRepository(dbtest.NewSQLite(t))

	offsets := []time.Duration{0, time.Hour, 2 * time.Hour}
	for i, off := range offsets {
		item := newItem("Hard thing "+string(rune('A'+i)), models.StatusPending, false)
		if err := repo.SaveSubmission(ctx, item, &models.Submission{CreatedIPHash: "abc", CreatedAt: t0.Add(off)}); err != nil {
			t.Fatalf("SaveSubmission: %v", err)
		}
	}
	if err := repo.SaveSubmission(ctx, newItem("Other person thing", models.StatusPending, false),
		&models.Submission{CreatedIPHash: "xyz", CreatedAt: t0}); err != nil {
		t.Fatalf("SaveSubmission: %v", err)
	}

	tests := []struct {
		name  string
		hash  string
		since time.Time
		want  int
	}{
		{"all for hash", "abc", t0.Add(-time.Minute), 3},
		{"boundary is exclusive", "abc", t0, 2},
		{"only latest", "abc", t0.Add(90 * time.Minute), 1},
		{"other hash", "xyz", t0.Add(-time.Minute), 1},
		{"unknown hash", "nope", t0.Add(-time.Minute), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.CountSubmissionsSince(ctx, tt.hash, tt.since)
			if err != nil {
				t.Fatalf("CountSubmissionsSince: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewItemRepository(dbtest.NewSQLite(t))
	item := newItem("Wake at five", models.StatusPending, false)
	if err := repo.Insert(ctx, item); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := repo.SetStatus(ctx, item.ID, models.StatusApproved); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	approved, err := repo.ListByStatus(ctx, models.StatusApproved)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(approved) != 1 || approved[0].ID != item.ID {
		t.Fatalf("expected item to be approved, got %+v", approved)
	}

	if err := repo.SetStatus(ctx, 9999, models.StatusApproved); !errors.Is(err, catalogdomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
