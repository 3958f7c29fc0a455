package service

import (
	"context"
	"time"

	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/domain"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/repository"
)

// BusinessPlanService binds the section accessors and seeding to one store
// and one seed payload source.
type BusinessPlanService struct {
	store   repository.Store
	payload func() ([]byte, error)
	now     func() time.Time
}

// NewBusinessPlanService creates a new BusinessPlanService. payload supplies
// the document used by Seed.
func NewBusinessPlanService(store repository.Store, payload func() ([]byte, error)) *BusinessPlanService {
	return &BusinessPlanService{
		store:   store,
		payload: payload,
		now:     time.Now,
	}
}

func (s *BusinessPlanService) Overview(ctx context.Context) (*domain.Overview, error) {
	return Overview(ctx, s.store)
}

func (s *BusinessPlanService) MarketAnalysis(ctx context.Context) (*domain.MarketAnalysis, error) {
	return MarketAnalysis(ctx, s.store)
}

func (s *BusinessPlanService) Financial(ctx context.Context) (*domain.Financial, error) {
	return Financial(ctx, s.store)
}

func (s *BusinessPlanService) Menu(ctx context.Context) (*domain.Menu, error) {
	return Menu(ctx, s.store)
}

func (s *BusinessPlanService) Locations(ctx context.Context) (*domain.Locations, error) {
	return Locations(ctx, s.store)
}

func (s *BusinessPlanService) Investment(ctx context.Context) (*domain.Investment, error) {
	return Investment(ctx, s.store)
}

func (s *BusinessPlanService) Section(ctx context.Context, section domain.Section) (any, error) {
	return Project(ctx, s.store, section)
}

// Seed populates the store from the configured payload if it is empty.
func (s *BusinessPlanService) Seed(ctx context.Context) (*SeedResult, error) {
	payload, err := s.payload()
	if err != nil {
		return nil, err
	}
	return SeedIfAbsent(ctx, s.store, payload, s.now())
}

// Ping reports whether the backing store is reachable.
func (s *BusinessPlanService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
