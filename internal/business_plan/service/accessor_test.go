package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/domain"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/repository"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/seed"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seedTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func defaultPayload(t *testing.T) []byte {
	t.Helper()
	payload, err := seed.Default()
	require.NoError(t, err)
	return payload
}

func seededStore(t *testing.T) (*repository.MemoryStore, *domain.BusinessPlan) {
	t.Helper()
	store := repository.NewMemoryStore()
	payload := defaultPayload(t)

	res, err := service.SeedIfAbsent(context.Background(), store, payload, seedTime)
	require.NoError(t, err)
	require.NotEmpty(t, res.InsertedID)

	want, err := domain.Decode(payload)
	require.NoError(t, err)
	return store, want
}

func allSections() []domain.Section {
	var out []domain.Section
	for _, s := range domain.Sections() {
		out = append(out, s.Name)
	}
	return out
}

func TestAccessors_NotSeeded(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()

	for _, section := range allSections() {
		t.Run(string(section), func(t *testing.T) {
			out, err := service.Project(ctx, store, section)
			assert.ErrorIs(t, err, domain.ErrNotFound)
			assert.Nil(t, out)
			assert.False(t, domain.IsStoreError(err))
		})
	}
}

func TestAccessors_RoundTrip(t *testing.T) {
	store, want := seededStore(t)
	ctx := context.Background()

	overview, err := service.Overview(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, want.Company, overview.Company)
	assert.Equal(t, want.ExecutiveSummary, overview.ExecutiveSummary)
	assert.Equal(t, "SHANGHAI CLOUD KITCHEN PROJECT", overview.Company.Name)

	market, err := service.MarketAnalysis(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, want.MarketData, market.MarketData)

	financial, err := service.Financial(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, want.FinancialData, financial.FinancialData)

	menu, err := service.Menu(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, want.Menu, menu.Menu)

	locations, err := service.Locations(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, want.Locations, locations.Locations)

	investment, err := service.Investment(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, want.Investment, investment.Investment)
}

func TestAccessors_ProjectionShape(t *testing.T) {
	store, _ := seededStore(t)
	ctx := context.Background()

	expected := map[domain.Section][]string{
		domain.SectionOverview:       {"company", "executive_summary"},
		domain.SectionMarketAnalysis: {"market_data"},
		domain.SectionFinancial:      {"financial_data"},
		domain.SectionMenu:           {"menu"},
		domain.SectionLocations:      {"locations"},
		domain.SectionInvestment:     {"investment"},
	}

	for section, keys := range expected {
		t.Run(string(section), func(t *testing.T) {
			out, err := service.Project(ctx, store, section)
			require.NoError(t, err)

			body, err := json.Marshal(out)
			require.NoError(t, err)

			var fields map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(body, &fields))

			got := make([]string, 0, len(fields))
			for k := range fields {
				got = append(got, k)
			}
			assert.ElementsMatch(t, keys, got)
			assert.NotContains(t, fields, "id")
			assert.NotContains(t, fields, "created_at")
		})
	}
}

func TestFinancial_Profitability(t *testing.T) {
	store, _ := seededStore(t)

	financial, err := service.Financial(context.Background(), store)
	require.NoError(t, err)

	p := financial.FinancialData.Profitability
	assert.Equal(t, 6300000, p.YearlyRevenue)
	assert.Equal(t, 5040000, p.OperationCosts)
	assert.Equal(t, 1260000, p.NetProfit)
	assert.Equal(t, 20, p.Margin)
	assert.Equal(t, p.NetProfit, p.YearlyRevenue-p.OperationCosts)
}

func TestAccessors_DoNotMutateStore(t *testing.T) {
	store, _ := seededStore(t)
	ctx := context.Background()

	menu, err := service.Menu(ctx, store)
	require.NoError(t, err)
	menu.Menu.Proteins[0] = "Mystery Meat"

	again, err := service.Menu(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, "Grilled Chicken", again.Menu.Proteins[0])
}

func TestAccessors_StoreFailure(t *testing.T) {
	store := repository.NewMemoryStore()
	store.FailWith = errors.New("dial tcp: connection refused")

	for _, section := range allSections() {
		t.Run(string(section), func(t *testing.T) {
			_, err := service.Project(context.Background(), store, section)
			require.Error(t, err)
			assert.True(t, domain.IsStoreError(err))
			assert.NotErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestProject_UnknownSection(t *testing.T) {
	_, err := service.Project(context.Background(), repository.NewMemoryStore(), "kitchen-sink")
	assert.ErrorIs(t, err, domain.ErrUnknownSection)
}

func TestSeedIfAbsent_Twice(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()

	first, err := service.SeedIfAbsent(ctx, store, defaultPayload(t), seedTime)
	require.NoError(t, err)
	assert.Equal(t, service.MsgSeeded, first.Message)
	assert.NotEmpty(t, first.InsertedID)

	// A different payload on the second call must not replace the first.
	var doc map[string]any
	require.NoError(t, json.Unmarshal(defaultPayload(t), &doc))
	doc["company"].(map[string]any)["name"] = "SOMEONE ELSE"
	other, err := json.Marshal(doc)
	require.NoError(t, err)

	second, err := service.SeedIfAbsent(ctx, store, other, seedTime.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, service.MsgAlreadyExists, second.Message)
	assert.Empty(t, second.InsertedID)
	assert.Equal(t, 1, store.Count())

	plan, err := store.Find(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.InsertedID, plan.ID)
	assert.Equal(t, "SHANGHAI CLOUD KITCHEN PROJECT", plan.Company.Name)
	assert.True(t, seedTime.Equal(plan.CreatedAt))
	assert.True(t, plan.CreatedAt.Equal(plan.UpdatedAt))
}

func TestSeedIfAbsent_InvalidPayload(t *testing.T) {
	store := repository.NewMemoryStore()

	var doc map[string]any
	require.NoError(t, json.Unmarshal(defaultPayload(t), &doc))
	delete(doc, "menu")
	payload, err := json.Marshal(doc)
	require.NoError(t, err)

	res, err := service.SeedIfAbsent(context.Background(), store, payload, seedTime)
	assert.Nil(t, res)
	require.Error(t, err)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "menu", ve.Field)
	assert.Equal(t, 0, store.Count())
}

func TestSeedIfAbsent_StoreFailure(t *testing.T) {
	store := repository.NewMemoryStore()
	store.FailWith = errors.New("i/o timeout")

	_, err := service.SeedIfAbsent(context.Background(), store, defaultPayload(t), seedTime)
	require.Error(t, err)
	assert.True(t, domain.IsStoreError(err))
}

// racingStore reports an empty store on Exists but a conflict on Insert, as
// happens when two first-time seeds overlap.
type racingStore struct {
	*repository.MemoryStore
}

func (racingStore) Exists(context.Context) (bool, error) { return false, nil }

func TestSeedIfAbsent_LostRace(t *testing.T) {
	mem, _ := seededStore(t)

	res, err := service.SeedIfAbsent(context.Background(), racingStore{mem}, defaultPayload(t), seedTime)
	require.NoError(t, err)
	assert.Equal(t, service.MsgAlreadyExists, res.Message)
	assert.Equal(t, 1, mem.Count())
}

func TestSeedIfAbsent_Concurrent(t *testing.T) {
	store := repository.NewMemoryStore()
	payload := defaultPayload(t)

	var wg sync.WaitGroup
	ids := make(chan string, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := service.SeedIfAbsent(context.Background(), store, payload, seedTime)
			if assert.NoError(t, err) && res.InsertedID != "" {
				ids <- res.InsertedID
			}
		}()
	}
	wg.Wait()
	close(ids)

	var inserted []string
	for id := range ids {
		inserted = append(inserted, id)
	}
	assert.Len(t, inserted, 1)
	assert.Equal(t, 1, store.Count())
}

func TestBusinessPlanService(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := service.NewBusinessPlanService(store, seed.Default)
	ctx := context.Background()

	_, err := svc.Overview(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	res, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, service.MsgSeeded, res.Message)

	out, err := svc.Section(ctx, domain.SectionLocations)
	require.NoError(t, err)
	locations, ok := out.(*domain.Locations)
	require.True(t, ok)
	assert.Equal(t, "Jing'an Cloud Kitchen", locations.Locations[0].Name)
	assert.Equal(t, []string{"Premium konut bölgesi", "5 km teslimat yarıçapı"}, locations.Locations[0].Features)

	assert.NoError(t, svc.Ping(ctx))
}

func TestBusinessPlanService_PayloadError(t *testing.T) {
	svc := service.NewBusinessPlanService(repository.NewMemoryStore(), func() ([]byte, error) {
		return nil, errors.New("read seed file: no such file")
	})

	_, err := svc.Seed(context.Background())
	assert.EqualError(t, err, "read seed file: no such file")
}
