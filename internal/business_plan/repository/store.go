package repository

import (
	"context"

	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/domain"
)

// Store persists the singleton business plan document.
//
// Find returns domain.ErrNotFound when nothing has been seeded. Insert returns
// domain.ErrAlreadyExists when a document is already present. Any other
// failure is a backend fault.
type Store interface {
	Find(ctx context.Context) (*domain.BusinessPlan, error)
	Exists(ctx context.Context) (bool, error)
	Insert(ctx context.Context, plan *domain.BusinessPlan) error
	Ping(ctx context.Context) error
}
