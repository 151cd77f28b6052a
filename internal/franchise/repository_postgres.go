package franchise

import (
	"context"
	"errors"
	"time"

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

func (r *PostgresRepository) Insert(ctx context.Context, f *Franchise) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO franchises (id, name, shop_number, email, password_hash, sales_paise, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		f.ID, f.Name, f.ShopNumber, f.Email, f.PasswordHash, f.SalesPaise, f.CreatedAt,
	)
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, f *Franchise) error {
	query := `
		UPDATE franchises
		SET name=$1, shop_number=$2, email=$3, password_hash=$4
		WHERE id=$5
	`
	tag, err := r.db.Exec(ctx, query,
		f.Name, f.ShopNumber, f.Email, f.PasswordHash, f.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM franchises WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*Franchise, error) {
	return r.findOne(ctx, `WHERE id=$1`, id)
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*Franchise, error) {
	return r.findOne(ctx, `WHERE email=$1`, email)
}

func (r *PostgresRepository) findOne(ctx context.Context, where string, arg any) (*Franchise, error) {
	query := `
		SELECT id, name, shop_number, email, password_hash, sales_paise, created_at
		FROM franchises ` + where

	f := &Franchise{}
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&f.ID, &f.Name, &f.ShopNumber, &f.Email, &f.PasswordHash, &f.SalesPaise, &f.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*Franchise, error) {
	query := `
		SELECT id, name, shop_number, email, password_hash, sales_paise, created_at
		FROM franchises
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Franchise
	for rows.Next() {
		f := &Franchise{}
		if err := rows.Scan(
			&f.ID, &f.Name, &f.ShopNumber, &f.Email, &f.PasswordHash, &f.SalesPaise, &f.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) AddSales(ctx context.Context, id string, amountPaise int64) error {
	query := `
		UPDATE franchises
		SET sales_paise = sales_paise + $1
		WHERE id = $2
	`
	tag, err := r.db.Exec(ctx, query, amountPaise, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
