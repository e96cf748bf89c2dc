package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"funeral_quote/internal/domain/entities"
	"funeral_quote/internal/usecase/interfaces"
)

// EstimatePostgresRepository stores estimates in the relational schema:
//
//	CREATE TABLE estimates (
//	    id            BIGSERIAL PRIMARY KEY,
//	    content       TEXT        NOT NULL,
//	    total_price   BIGINT      NOT NULL,
//	    customer_info JSONB,
//	    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type EstimatePostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IEstimateRepository = (*EstimatePostgresRepository)(nil)

func NewEstimatePostgresRepository(db *sql.DB) *EstimatePostgresRepository {
	return &EstimatePostgresRepository{db: db}
}

const insertEstimateSQL = `INSERT INTO estimates (content, total_price, customer_info)
VALUES ($1, $2, $3)
RETURNING id, created_at`

const selectEstimateSQL = `SELECT id, content, total_price, customer_info, created_at
FROM estimates WHERE id = $1`

func (r *EstimatePostgresRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	var customer []byte
	if len(e.CustomerInfo) > 0 {
		var err error
		customer, err = json.Marshal(e.CustomerInfo)
		if err != nil {
			return entities.Estimate{}, fmt.Errorf("encode customer info: %w", err)
		}
	}

	row := r.db.QueryRowContext(ctx, insertEstimateSQL, e.Content, e.TotalPrice, nullableJSON(customer))
	if err := row.Scan(&e.ID, &e.CreatedAt); err != nil {
		return entities.Estimate{}, fmt.Errorf("insert estimate: %w", err)
	}
	return e, nil
}

func (r *EstimatePostgresRepository) GetByID(ctx context.Context, id int64) (entities.Estimate, error) {
	var (
		e        entities.Estimate
		customer []byte
	)
	err := r.db.QueryRowContext(ctx, selectEstimateSQL, id).
		Scan(&e.ID, &e.Content, &e.TotalPrice, &customer, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Estimate{}, nil
	}
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("select estimate %d: %w", id, err)
	}
	if e.CustomerInfo, err = entities.DecodeCustomerInfo(customer); err != nil {
		return entities.Estimate{}, fmt.Errorf("decode customer info of estimate %d: %w", id, err)
	}
	return e, nil
}

func nullableJSON(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
