package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/iphash"
	catalogdomain "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/models"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/repositories"
	domainsvcs "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/services"
)

const (
	// DefaultSubmissionLimit is the number of submissions allowed per window.
	DefaultSubmissionLimit = 10
	// DefaultSubmissionWindow is the trailing window the limit applies to.
	DefaultSubmissionWindow = 24 * time.Hour
)

// SubmissionOptions configures a SubmissionService. Zero values fall back to
// the defaults; Now defaults to time.Now.
type SubmissionOptions struct {
	Hasher  *iphash.Hasher
	Limit   int
	Window  time.Duration
	Timeout time.Duration
	Now     func() time.Time
}

// SubmissionService runs the public submission pipeline.
// Event publishing is handled by the repository layer (outbox pattern).
type SubmissionService struct {
	repo    repositories.ItemRepository
	opts    SubmissionOptions
	metrics *metrics
}

// NewSubmissionService returns a SubmissionService wired with the given repository.
func NewSubmissionService(repo repositories.ItemRepository, opts SubmissionOptions, m *metrics) *SubmissionService {
	if opts.Limit <= 0 {
		opts.Limit = DefaultSubmissionLimit
	}
	if opts.Window <= 0 {
		opts.Window = DefaultSubmissionWindow
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Hasher == nil {
		opts.Hasher = iphash.New("")
	}
	return &SubmissionService{repo: repo, opts: opts, metrics: m}
}

// Submit validates c, enforces the per-client rate limit and duplicate check,
// then stores a pending item together with its audit record.
// clientIP is hashed before it reaches storage; it is never persisted raw.
func (s *SubmissionService) Submit(ctx context.Context, c domainsvcs.Candidate, clientIP string) (*models.Item, error) {
	item, err := s.submit(ctx, c, clientIP)
	s.metrics.recordSubmission(ctx, outcomeOf(err))
	return item, err
}

func (s *SubmissionService) submit(ctx context.Context, c domainsvcs.Candidate, clientIP string) (*models.Item, error) {
	desc, err := domainsvcs.ValidateSubmission(c)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, s.opts.Timeout)
	defer cancel()

	now := s.opts.Now().UTC()
	ipHash := s.opts.Hasher.Hash(clientIP)

	if ipHash != "" {
		count, err := s.repo.CountSubmissionsSince(ctx, ipHash, now.Add(-s.opts.Window))
		if err != nil {
			return nil, fmt.Errorf("count recent submissions: %w", err)
		}
		if count >= s.opts.Limit {
			return nil, catalogdomain.ErrRateLimitExceeded
		}
	}

	exists, err := s.repo.NameExists(ctx, desc.Name)
	if err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if exists {
		return nil, catalogdomain.ErrDuplicateItem
	}

	item := models.NewItem(desc.Name, desc.Category, desc.IsHalf, desc.Weight, models.StatusPending, now)
	sub := &models.Submission{CreatedIPHash: ipHash, CreatedAt: now}
	if err := s.repo.SaveSubmission(ctx, item, sub); err != nil {
		return nil, fmt.Errorf("save submission: %w", err)
	}
	return item, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeAccepted
	case errors.Is(err, catalogdomain.ErrRateLimitExceeded):
		return outcomeRateLimited
	case errors.Is(err, catalogdomain.ErrDuplicateItem):
		return outcomeDuplicate
	case errors.Is(err, catalogdomain.ErrInvalidName),
		errors.Is(err, catalogdomain.ErrInvalidCategory),
		errors.Is(err, catalogdomain.ErrInvalidWeight),
		errors.Is(err, catalogdomain.ErrContentRejected):
		return outcomeInvalid
	default:
		return outcomeError
	}
}
