package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS (restaurateur accounts)
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'RESTAURANT',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// RESTAURANTS
	// -------------------------------
	restaurantTableSQL := `
		CREATE TABLE IF NOT EXISTS restaurants (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL REFERENCES users(id),
			name VARCHAR(255) NOT NULL,
			contact_first_name VARCHAR(255) NOT NULL DEFAULT '',
			contact_last_name VARCHAR(255) NOT NULL DEFAULT '',
			address VARCHAR(500) NOT NULL DEFAULT '',
			email VARCHAR(255) NOT NULL DEFAULT '',
			call_number VARCHAR(50) NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, restaurantTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU ITEMS
	// -------------------------------
	menuItemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			restaurant_id UUID NOT NULL REFERENCES restaurants(id),
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL DEFAULT 0,
			aliases TEXT NOT NULL DEFAULT ''
		)
	`
	if _, err := db.Exec(ctx, menuItemsSQL); err != nil {
		return err
	}

	// -------------------------------
	// ORDERS
	// -------------------------------
	ordersSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			restaurant_id UUID NOT NULL REFERENCES restaurants(id),
			lines JSONB NOT NULL,
			total NUMERIC(10,2) NOT NULL DEFAULT 0,
			status VARCHAR(50) NOT NULL DEFAULT 'pending',
			source VARCHAR(50) NOT NULL DEFAULT 'web',
			call_id VARCHAR(255) NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, ordersSQL); err != nil {
		return err
	}

	// The authoritative duplicate guard for voice retries: at most one
	// order per (restaurant, call_id). Partial so unkeyed orders are
	// unaffected.
	callIDIndexSQL := `
		CREATE UNIQUE INDEX IF NOT EXISTS orders_restaurant_call_id_key
		ON orders (restaurant_id, call_id)
		WHERE call_id IS NOT NULL
	`
	if _, err := db.Exec(ctx, callIDIndexSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
