package billing

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, record *Record) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	linesJSON, err := json.Marshal(record.Lines)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO bills (id, franchise_id, lines, total_paise, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.db.Exec(ctx, query,
		record.ID,
		record.FranchiseID,
		linesJSON,
		record.TotalPaise,
		record.Status,
		record.CreatedAt,
	)
	return err
}

func (r *PostgresRepository) ListByFranchise(ctx context.Context, franchiseID string) ([]*Record, error) {
	query := `
		SELECT id, franchise_id, lines, total_paise, status, created_at
		FROM bills
		WHERE franchise_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, franchiseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*Record, error) {
	query := `
		SELECT id, franchise_id, lines, total_paise, status, created_at
		FROM bills
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanRecords(rows pgxRows) ([]*Record, error) {
	var out []*Record
	for rows.Next() {
		rec := &Record{}
		var linesJSON []byte

		if err := rows.Scan(
			&rec.ID,
			&rec.FranchiseID,
			&linesJSON,
			&rec.TotalPaise,
			&rec.Status,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}

		if len(linesJSON) > 0 {
			if err := json.Unmarshal(linesJSON, &rec.Lines); err != nil {
				return nil, err
			}
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
