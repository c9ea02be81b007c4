package restaurant

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rest *Restaurant) error {
	if rest.ID == "" {
		rest.ID = uuid.New().String()
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO restaurants (
			id, owner_id, name,
			contact_first_name, contact_last_name,
			address, email, call_number
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`,
		rest.ID, rest.OwnerID, rest.Name,
		rest.ContactFirstName, rest.ContactLastName,
		rest.Address, rest.Email, rest.CallNumber,
	).Scan(&rest.CreatedAt)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Restaurant, error) {
	rest := &Restaurant{}
	err := r.db.QueryRow(ctx, `
		SELECT id, owner_id, name,
		       contact_first_name, contact_last_name,
		       address, email, call_number, created_at
		FROM restaurants
		WHERE id = $1
	`, id).Scan(
		&rest.ID, &rest.OwnerID, &rest.Name,
		&rest.ContactFirstName, &rest.ContactLastName,
		&rest.Address, &rest.Email, &rest.CallNumber, &rest.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("restaurant not found")
		}
		return nil, err
	}
	return rest, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Restaurant, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, name,
		       contact_first_name, contact_last_name,
		       address, email, call_number, created_at
		FROM restaurants
		WHERE owner_id = $1
		ORDER BY created_at
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Restaurant
	for rows.Next() {
		rest := &Restaurant{}
		if err := rows.Scan(
			&rest.ID, &rest.OwnerID, &rest.Name,
			&rest.ContactFirstName, &rest.ContactLastName,
			&rest.Address, &rest.Email, &rest.CallNumber, &rest.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rest)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) IsOwner(ctx context.Context, restaurantID, userID string) (bool, error) {
	var one int
	err := r.db.QueryRow(ctx, `
		SELECT 1 FROM restaurants
		WHERE id = $1 AND owner_id = $2
	`, restaurantID, userID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, upd Update) (*Restaurant, error) {
	_, err := r.db.Exec(ctx, `
		UPDATE restaurants SET
			name               = COALESCE($2, name),
			contact_first_name = COALESCE($3, contact_first_name),
			contact_last_name  = COALESCE($4, contact_last_name),
			address            = COALESCE($5, address),
			email              = COALESCE($6, email),
			call_number        = COALESCE($7, call_number)
		WHERE id = $1
	`, id,
		upd.Name, upd.ContactFirstName, upd.ContactLastName,
		upd.Address, upd.Email, upd.CallNumber,
	)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// FindByCallNumber compares numbers in their normalized form. Stored
// values predate normalization, so candidates are normalized here rather
// than in SQL.
func (r *PostgresRepository) FindByCallNumber(ctx context.Context, number string) (*Restaurant, error) {
	target := NormalizeNumber(number)
	if target == "" {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, name,
		       contact_first_name, contact_last_name,
		       address, email, call_number, created_at
		FROM restaurants
		WHERE call_number IS NOT NULL AND call_number <> ''
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		rest := &Restaurant{}
		if err := rows.Scan(
			&rest.ID, &rest.OwnerID, &rest.Name,
			&rest.ContactFirstName, &rest.ContactLastName,
			&rest.Address, &rest.Email, &rest.CallNumber, &rest.CreatedAt,
		); err != nil {
			return nil, err
		}
		if NormalizeNumber(rest.CallNumber) == target {
			return rest, nil
		}
	}
	return nil, rows.Err()
}
