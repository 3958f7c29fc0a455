package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/domain"
)

// The boolean primary key only admits TRUE, so the table holds at most one row.
const createBusinessPlansTable = `
CREATE TABLE IF NOT EXISTS business_plans (
	singleton  BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (singleton),
	plan_id    TEXT NOT NULL,
	document   JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

// PostgresStore keeps the business plan as a JSONB document in a one-row table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the business_plans table if it does not exist.
func (r *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createBusinessPlansTable); err != nil {
		return fmt.Errorf("failed to create business_plans table: %w", err)
	}
	return nil
}

func (r *PostgresStore) Find(ctx context.Context) (*domain.BusinessPlan, error) {
	const q = `SELECT document FROM business_plans LIMIT 1`

	var doc []byte
	err := r.db.QueryRowContext(ctx, q).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get business plan: %w", err)
	}

	var plan domain.BusinessPlan
	if err := json.Unmarshal(doc, &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal business plan: %w", err)
	}
	return &plan, nil
}

func (r *PostgresStore) Exists(ctx context.Context) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM business_plans)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, q).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check if business plan exists: %w", err)
	}
	return exists, nil
}

func (r *PostgresStore) Insert(ctx context.Context, plan *domain.BusinessPlan) error {
	const q = `
INSERT INTO business_plans (singleton, plan_id, document, created_at, updated_at)
VALUES (TRUE, $1, $2, $3, $4)
ON CONFLICT (singleton) DO NOTHING
`
	doc, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal business plan: %w", err)
	}

	res, err := r.db.ExecContext(ctx, q, plan.ID, doc, plan.CreatedAt, plan.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert business plan: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to insert business plan: %w", err)
	}
	if n == 0 {
		return domain.ErrAlreadyExists
	}
	return nil
}

func (r *PostgresStore) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
