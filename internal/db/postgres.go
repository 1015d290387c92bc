package db

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	URL      string
	MaxConns int32
	MinConns int32
}

func DefaultConfig(url string) Config {
	return Config{
		URL:      url,
		MaxConns: 10,
		MinConns: 2,
	}
}

func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	log.Println("Connected to PostgreSQL")

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// initSchema creates or updates the database schema
func initSchema(ctx context.Context, db *pgxpool.Pool) error {

	// -------------------------------
	// SCANNED ITEMS
	// -------------------------------
	scannedItemsSQL := `
		CREATE TABLE IF NOT EXISTS scanned_items (
			id UUID PRIMARY KEY,
			user_id UUID NULL,
			store_name VARCHAR(255) NOT NULL DEFAULT 'Unknown Store',
			scan_date DATE NOT NULL DEFAULT CURRENT_DATE,
			subtotal NUMERIC(12,2) NULL,
			tax NUMERIC(12,2) NULL,
			total NUMERIC(12,2) NOT NULL DEFAULT 0,
			co2_total NUMERIC(12,3) NOT NULL DEFAULT 0,
			confidence REAL NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, scannedItemsSQL); err != nil {
		return err
	}

	// -------------------------------
	// RECEIPT ITEMS
	// -------------------------------
	receiptItemsSQL := `
		CREATE TABLE IF NOT EXISTS receipt_items (
			id UUID PRIMARY KEY,
			scanned_item_id UUID NOT NULL,
			name VARCHAR(255) NOT NULL,
			quantity VARCHAR(50) NOT NULL DEFAULT '1',
			price NUMERIC(12,2) NOT NULL DEFAULT 0,
			category VARCHAR(50) NOT NULL DEFAULT 'other',
			co2_estimate NUMERIC(12,3) NOT NULL DEFAULT 0,
			FOREIGN KEY (scanned_item_id) REFERENCES scanned_items(id) ON DELETE CASCADE
		)
	`
	if _, err := db.Exec(ctx, receiptItemsSQL); err != nil {
		return err
	}

	// -------------------------------
	// USER GOALS (ONE ROW PER USER)
	// -------------------------------
	userGoalsSQL := `
		CREATE TABLE IF NOT EXISTS user_goals (
			id UUID PRIMARY KEY,
			user_id UUID NULL UNIQUE,
			weekly_goal NUMERIC(12,3) NOT NULL DEFAULT 0,
			monthly_goal NUMERIC(12,3) NOT NULL DEFAULT 0,
			yearly_goal NUMERIC(12,3) NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userGoalsSQL); err != nil {
		return err
	}

	// -------------------------------
	// CARBON CATEGORIES (SEEDED)
	// -------------------------------
	categoriesSQL := `
		CREATE TABLE IF NOT EXISTS carbon_categories (
			id SERIAL PRIMARY KEY,
			name VARCHAR(50) UNIQUE NOT NULL,
			co2_per_euro NUMERIC(8,3) NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		)
	`
	if _, err := db.Exec(ctx, categoriesSQL); err != nil {
		return err
	}

	seedSQL := `
		INSERT INTO carbon_categories (name, co2_per_euro, description) VALUES
			('food',        0.6, 'Groceries and prepared food'),
			('household',   0.4, 'Cleaning, supplies, furniture'),
			('electronics', 0.9, 'Devices and appliances'),
			('clothing',    0.7, 'Apparel and footwear'),
			('other',       0.5, 'Everything else')
		ON CONFLICT (name) DO NOTHING
	`
	if _, err := db.Exec(ctx, seedSQL); err != nil {
		return err
	}

	// -------------------------------
	// ACHIEVEMENTS
	// -------------------------------
	achievementsSQL := `
		CREATE TABLE IF NOT EXISTS achievements (
			id UUID PRIMARY KEY,
			user_id UUID NULL,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			earned_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, achievementsSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
