package domain

import (
	"time"

	"github.com/google/uuid"
)

// NewPlanID returns a random identifier for a newly created plan.
func NewPlanID() string {
	return uuid.New().String()
}

// Stamp assigns the generated fields of a plan about to be created.
// Both timestamps are set to the same instant since plans are never updated.
func (p *BusinessPlan) Stamp(now time.Time) {
	p.ID = NewPlanID()
	now = now.UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
}
