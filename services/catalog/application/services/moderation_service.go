package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	catalogdomain "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/models"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/repositories"
	domainsvcs "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/services"
)

// ModerationService backs the hardctl CLI. It has no HTTP surface.
type ModerationService struct {
	repo    repositories.ItemRepository
	timeout time.Duration
	now     func() time.Time
}

// NewModerationService returns a ModerationService. now defaults to time.Now.
func NewModerationService(repo repositories.ItemRepository, timeout time.Duration, now func() time.Time) *ModerationService {
	if now == nil {
		now = time.Now
	}
	return &ModerationService{repo: repo, timeout: timeout, now: now}
}

// Pending lists items awaiting review, oldest first.
func (s *ModerationService) Pending(ctx context.Context) ([]*models.Item, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	items, err := s.repo.ListByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending items: %w", err)
	}
	return items, nil
}

// Approve makes item id eligible for listing and selection.
func (s *ModerationService) Approve(ctx context.Context, id int64) error {
	return s.setStatus(ctx, id, models.StatusApproved)
}

// Reject removes item id from review without deleting it.
func (s *ModerationService) Reject(ctx context.Context, id int64) error {
	return s.setStatus(ctx, id, models.StatusRejected)
}

func (s *ModerationService) setStatus(ctx context.Context, id int64, status models.Status) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return fmt.Errorf("set item %d %s: %w", id, status, err)
	}
	return nil
}

// SeedReport summarizes a Seed run.
type SeedReport struct {
	Inserted []int64  `json:"inserted"`
	Skipped  []string `json:"skipped"`
}

// Seed inserts approved items. Every entry passes the submission validator;
// entries whose name already exists are skipped and reported. The first
// validation or storage failure aborts the run.
func (s *ModerationService) Seed(ctx context.Context, entries []domainsvcs.Candidate) (SeedReport, error) {
	report := SeedReport{Inserted: []int64{}, Skipped: []string{}}
	for i, c := range entries {
		desc, err := domainsvcs.ValidateSubmission(c)
		if err != nil {
			return report, fmt.Errorf("entry %d (%q): %w", i, c.Name, err)
		}

		item := models.NewItem(desc.Name, desc.Category, desc.IsHalf, desc.Weight, models.StatusApproved, s.now())
		err = s.insert(ctx, item)
		switch {
		case errors.Is(err, catalogdomain.ErrDuplicateItem):
			report.Skipped = append(report.Skipped, desc.Name.String())
		case err != nil:
			return report, fmt.Errorf("entry %d (%q): %w", i, c.Name, err)
		default:
			report.Inserted = append(report.Inserted, item.ID)
		}
	}
	return report, nil
}

func (s *ModerationService) insert(ctx context.Context, item *models.Item) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.repo.Insert(ctx, item)
}
