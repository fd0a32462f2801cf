package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
)

// IncomeSourceRepository implements domain.IncomeSourceRepository using PostgreSQL.
// received_at is derived from is_received on every write that sets it.
type IncomeSourceRepository struct {
	pool *pgxpool.Pool
}

// NewIncomeSourceRepository creates a new IncomeSourceRepository
func NewIncomeSourceRepository(pool *pgxpool.Pool) *IncomeSourceRepository {
	return &IncomeSourceRepository{pool: pool}
}

const incomeSourceColumns = `id, owner_id, name, source_type, amount, month, year, note,
	is_received, received_at, created_at, updated_at`

// Create inserts an income source
func (r *IncomeSourceRepository) Create(ctx context.Context, source *domain.IncomeSource) (*domain.IncomeSource, error) {
	amount, err := decimalToPgNumeric(source.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO income_sources (owner_id, name, source_type, amount, month, year, note, is_received, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CASE WHEN $8 THEN NOW() END)
		RETURNING `+incomeSourceColumns,
		source.OwnerID, source.Name, string(source.SourceType), amount, source.Month, source.Year,
		stringPtrToPgText(source.Note), source.IsReceived,
	)
	return scanIncomeSource(row)
}

// GetByID retrieves an income source within the owner's scope
func (r *IncomeSourceRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.IncomeSource, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+incomeSourceColumns+` FROM income_sources WHERE owner_id = $1 AND id = $2`, ownerID, id)
	source, err := scanIncomeSource(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrIncomeSourceNotFound
	}
	return source, err
}

// Update replaces the editable fields. received_at is kept when the source stays
// received, stamped when it becomes received and cleared otherwise.
func (r *IncomeSourceRepository) Update(ctx context.Context, source *domain.IncomeSource) (*domain.IncomeSource, error) {
	amount, err := decimalToPgNumeric(source.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE income_sources
		SET name = $3, source_type = $4, amount = $5, month = $6, year = $7, note = $8,
		    is_received = $9,
		    received_at = CASE WHEN $9 THEN COALESCE(received_at, NOW()) END,
		    updated_at = NOW()
		WHERE owner_id = $1 AND id = $2
		RETURNING `+incomeSourceColumns,
		source.OwnerID, source.ID, source.Name, string(source.SourceType), amount, source.Month,
		source.Year, stringPtrToPgText(source.Note), source.IsReceived,
	)
	updated, err := scanIncomeSource(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrIncomeSourceNotFound
	}
	return updated, err
}

// SetReceived flips is_received and stamps or clears received_at with it
func (r *IncomeSourceRepository) SetReceived(ctx context.Context, ownerID, id uuid.UUID, received bool) (*domain.IncomeSource, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE income_sources
		SET is_received = $3,
		    received_at = CASE WHEN $3 THEN NOW() END,
		    updated_at = NOW()
		WHERE owner_id = $1 AND id = $2
		RETURNING `+incomeSourceColumns, ownerID, id, received)
	updated, err := scanIncomeSource(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrIncomeSourceNotFound
	}
	return updated, err
}

// Delete hard-deletes an income source
func (r *IncomeSourceRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM income_sources WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrIncomeSourceNotFound
	}
	return nil
}

// ListByMonth returns the income sources of one month, newest first
func (r *IncomeSourceRepository) ListByMonth(ctx context.Context, ownerID uuid.UUID, month, year int) ([]*domain.IncomeSource, error) {
	return r.query(ctx, `
		SELECT `+incomeSourceColumns+` FROM income_sources
		WHERE owner_id = $1 AND month = $2 AND year = $3
		ORDER BY created_at DESC`, ownerID, month, year)
}

// ListByYears returns every income source in any of the given years
func (r *IncomeSourceRepository) ListByYears(ctx context.Context, ownerID uuid.UUID, years []int) ([]*domain.IncomeSource, error) {
	if len(years) == 0 {
		return []*domain.IncomeSource{}, nil
	}
	return r.query(ctx, `
		SELECT `+incomeSourceColumns+` FROM income_sources
		WHERE owner_id = $1 AND year = ANY($2)
		ORDER BY year, month`, ownerID, years)
}

func (r *IncomeSourceRepository) query(ctx context.Context, sql string, args ...any) ([]*domain.IncomeSource, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sources := make([]*domain.IncomeSource, 0)
	for rows.Next() {
		s, err := scanIncomeSource(rows)
		if err != nil {
			return nil, err
		}
		sources = append(sources, s)
	}
	return sources, rows.Err()
}

func scanIncomeSource(row pgx.Row) (*domain.IncomeSource, error) {
	var (
		s          domain.IncomeSource
		sourceType string
		amount     pgtype.Numeric
		month      int16
		year       int16
		note       pgtype.Text
		receivedAt pgtype.Timestamptz
	)
	if err := row.Scan(&s.ID, &s.OwnerID, &s.Name, &sourceType, &amount, &month, &year, &note,
		&s.IsReceived, &receivedAt, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}

	s.SourceType = domain.IncomeSourceType(sourceType)
	s.Amount = pgNumericToDecimal(amount)
	s.Month = int(month)
	s.Year = int(year)
	s.Note = pgTextToStringPtr(note)
	if receivedAt.Valid {
		t := receivedAt.Time
		s.ReceivedAt = &t
	}
	return &s, nil
}
