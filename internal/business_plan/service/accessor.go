package service

import (
	"context"
	"errors"

	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/domain"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/repository"
)

// load fetches the singleton plan. Anything other than "not seeded" is
// reported as a StoreError.
func load(ctx context.Context, store repository.Store, op string) (*domain.BusinessPlan, error) {
	plan, err := store.Find(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, domain.NewStoreError(op, err)
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	return plan, nil
}

// Overview returns the company info and executive summary.
func Overview(ctx context.Context, store repository.Store) (*domain.Overview, error) {
	plan, err := load(ctx, store, "get overview")
	if err != nil {
		return nil, err
	}
	return &domain.Overview{
		Company:          plan.Company,
		ExecutiveSummary: plan.ExecutiveSummary,
	}, nil
}

// MarketAnalysis returns market sizing, growth trend, cost comparison and demographics.
func MarketAnalysis(ctx context.Context, store repository.Store) (*domain.MarketAnalysis, error) {
	plan, err := load(ctx, store, "get market analysis")
	if err != nil {
		return nil, err
	}
	return &domain.MarketAnalysis{MarketData: plan.MarketData}, nil
}

// Financial returns the investment breakdown, revenue projection and profitability.
func Financial(ctx context.Context, store repository.Store) (*domain.Financial, error) {
	plan, err := load(ctx, store, "get financial")
	if err != nil {
		return nil, err
	}
	return &domain.Financial{FinancialData: plan.FinancialData}, nil
}

func Menu(ctx context.Context, store repository.Store) (*domain.Menu, error) {
	plan, err := load(ctx, store, "get menu")
	if err != nil {
		return nil, err
	}
	return &domain.Menu{Menu: plan.Menu}, nil
}

func Locations(ctx context.Context, store repository.Store) (*domain.Locations, error) {
	plan, err := load(ctx, store, "get locations")
	if err != nil {
		return nil, err
	}
	return &domain.Locations{Locations: plan.Locations}, nil
}

// Investment returns the funding ask, its usage, ROI projection and milestones.
func Investment(ctx context.Context, store repository.Store) (*domain.Investment, error) {
	plan, err := load(ctx, store, "get investment")
	if err != nil {
		return nil, err
	}
	return &domain.Investment{Investment: plan.Investment}, nil
}

// Project returns the projection for the named section.
func Project(ctx context.Context, store repository.Store, section domain.Section) (any, error) {
	var (
		out any
		err error
	)
	switch section {
	case domain.SectionOverview:
		out, err = Overview(ctx, store)
	case domain.SectionMarketAnalysis:
		out, err = MarketAnalysis(ctx, store)
	case domain.SectionFinancial:
		out, err = Financial(ctx, store)
	case domain.SectionMenu:
		out, err = Menu(ctx, store)
	case domain.SectionLocations:
		out, err = Locations(ctx, store)
	case domain.SectionInvestment:
		out, err = Investment(ctx, store)
	default:
		return nil, domain.ErrUnknownSection
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
