package order

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrOrderNotFound = errors.New("order not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, o *Order) error {
	lines, err := json.Marshal(o.Lines)
	if err != nil {
		return err
	}

	// call_id is stored as NULL rather than '' so the partial unique
	// index on (restaurant_id, call_id) only applies to keyed orders.
	var callID *string
	if o.CallID != "" {
		callID = &o.CallID
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO orders (restaurant_id, lines, total, status, source, call_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`,
		o.RestaurantID, lines, o.Total, o.Status, o.Source, callID,
	).Scan(&o.ID, &o.CreatedAt)
}

func (r *PostgresRepository) GetByID(ctx context.Context, orderID int) (*Order, error) {
	o, err := r.scanOne(r.db.QueryRow(ctx, `
		SELECT id, restaurant_id, lines, total, status, source, call_id, created_at
		FROM orders
		WHERE id = $1
	`, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *PostgresRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, lines, total, status, source, call_id, created_at
		FROM orders
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Order
	for rows.Next() {
		o, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, orderID int, status string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders SET status = $1 WHERE id = $2
	`, status, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *PostgresRepository) FindByCallID(ctx context.Context, restaurantID, callID string) (*Order, error) {
	o, err := r.scanOne(r.db.QueryRow(ctx, `
		SELECT id, restaurant_id, lines, total, status, source, call_id, created_at
		FROM orders
		WHERE restaurant_id = $1 AND call_id = $2
	`, restaurantID, callID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return o, nil
}

func (r *PostgresRepository) scanOne(row pgx.Row) (*Order, error) {
	o := &Order{}
	var lines []byte
	var callID *string

	err := row.Scan(
		&o.ID, &o.RestaurantID, &lines, &o.Total,
		&o.Status, &o.Source, &callID, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(lines, &o.Lines); err != nil {
		return nil, err
	}
	if callID != nil {
		o.CallID = *callID
	}
	return o, nil
}
