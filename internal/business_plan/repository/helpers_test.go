package repository_test

import (
	"testing"
	"time"

	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/domain"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/seed"
	"github.com/stretchr/testify/require"
)

func samplePlan(t *testing.T) *domain.BusinessPlan {
	t.Helper()
	payload, err := seed.Default()
	require.NoError(t, err)

	plan, err := domain.Decode(payload)
	require.NoError(t, err)
	plan.Stamp(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	return plan
}
