package service

import (
	"context"
	"errors"
	"time"

	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/domain"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/repository"
)

const (
	MsgSeeded        = "Business plan data seeded successfully"
	MsgAlreadyExists = "Business plan data already exists"
)

// SeedResult acknowledges a seed call. InsertedID is empty when a plan was
// already present.
type SeedResult struct {
	Message    string `json:"message"`
	InsertedID string `json:"inserted_id,omitempty"`
}

// SeedIfAbsent inserts payload as the sole plan when the store is empty.
// It never modifies an existing plan. The existence check and the insert
// are separate round trips; a store that loses the race reports
// ErrAlreadyExists and the call degrades to the no-op acknowledgment.
func SeedIfAbsent(ctx context.Context, store repository.Store, payload []byte, now time.Time) (*SeedResult, error) {
	exists, err := store.Exists(ctx)
	if err != nil {
		return nil, domain.NewStoreError("check business plan", err)
	}
	if exists {
		return &SeedResult{Message: MsgAlreadyExists}, nil
	}

	plan, err := domain.Decode(payload)
	if err != nil {
		return nil, err
	}
	plan.Stamp(now)

	if err := store.Insert(ctx, plan); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return &SeedResult{Message: MsgAlreadyExists}, nil
		}
		return nil, domain.NewStoreError("insert business plan", err)
	}

	return &SeedResult{Message: MsgSeeded, InsertedID: plan.ID}, nil
}
