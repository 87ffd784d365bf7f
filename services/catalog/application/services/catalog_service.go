package services

import (
	"context"
	"fmt"
	"time"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/models"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/repositories"
	domainsvcs "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/services"
)

// CatalogService serves the public read side: listing and daily choices.
type CatalogService struct {
	repo    repositories.ItemRepository
	timeout time.Duration
	metrics *metrics
}

// NewCatalogService returns a CatalogService. timeout bounds each storage call.
func NewCatalogService(repo repositories.ItemRepository, timeout time.Duration, m *metrics) *CatalogService {
	return &CatalogService{repo: repo, timeout: timeout, metrics: m}
}

// List returns approved items ordered by id.
func (s *CatalogService) List(ctx context.Context) ([]models.PublicItem, error) {
	items, err := s.approved(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.PublicItem, len(items))
	for i, it := range items {
		out[i] = it.Public()
	}
	return out, nil
}

// Choose draws today's hard thing from the approved catalog. An empty pool is
// not an error: the returned Choice is empty and its text says why.
func (s *CatalogService) Choose(ctx context.Context, sel domainsvcs.Selection) (models.Choice, error) {
	items, err := s.approved(ctx)
	if err != nil {
		return models.Choice{}, err
	}
	choice := domainsvcs.Select(items, sel)
	s.metrics.recordChoice(ctx, choice)
	return choice, nil
}

func (s *CatalogService) approved(ctx context.Context) ([]*models.Item, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	items, err := s.repo.ListByStatus(ctx, models.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("list approved items: %w", err)
	}
	return items, nil
}
