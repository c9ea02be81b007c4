package menu

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrItemNotFound = errors.New("menu item not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, item *Item) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO menu_items (restaurant_id, name, description, price, aliases)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		item.RestaurantID, item.Name, item.Description, item.Price, item.Aliases,
	).Scan(&item.ID)
}

func (r *PostgresRepository) GetByID(ctx context.Context, restaurantID string, itemID int) (*Item, error) {
	item := &Item{}
	err := r.db.QueryRow(ctx, `
		SELECT id, restaurant_id, name, description, price, aliases
		FROM menu_items
		WHERE id = $1 AND restaurant_id = $2
	`, itemID, restaurantID).Scan(
		&item.ID, &item.RestaurantID, &item.Name,
		&item.Description, &item.Price, &item.Aliases,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// ListByRestaurant returns items in insertion (id) order. The voice
// lexicon depends on this ordering for reproducible collision handling.
func (r *PostgresRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, name, description, price, aliases
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY id
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.ID, &item.RestaurantID, &item.Name,
			&item.Description, &item.Price, &item.Aliases,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, item *Item) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, aliases = $4
		WHERE id = $5 AND restaurant_id = $6
	`,
		item.Name, item.Description, item.Price, item.Aliases,
		item.ID, item.RestaurantID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, restaurantID string, itemID int) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM menu_items
		WHERE id = $1 AND restaurant_id = $2
	`, itemID, restaurantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}
