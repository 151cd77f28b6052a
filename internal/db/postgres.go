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

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema.
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	franchisesSQL := `
		CREATE TABLE IF NOT EXISTS franchises (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			shop_number VARCHAR(50) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			sales_paise BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, franchisesSQL); err != nil {
		return err
	}

	billsSQL := `
		CREATE TABLE IF NOT EXISTS bills (
			id UUID PRIMARY KEY,
			franchise_id UUID NOT NULL,
			lines JSONB NOT NULL,
			total_paise BIGINT NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'completed',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (franchise_id) REFERENCES franchises(id) ON DELETE CASCADE
		)
	`
	if _, err := pool.Exec(ctx, billsSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
