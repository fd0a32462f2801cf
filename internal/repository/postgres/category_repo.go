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

// CategoryRepository implements domain.CategoryRepository using PostgreSQL
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

const categoryColumns = `id, owner_id, name, icon, color, type, is_default, created_at, updated_at`

// Create inserts a category. A duplicate (owner, type, name) yields ErrCategoryAlreadyExists.
func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO categories (owner_id, name, icon, color, type, is_default)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+categoryColumns,
		category.OwnerID, category.Name, stringPtrToPgText(category.Icon), category.Color,
		string(category.Type), category.IsDefault,
	)
	created, err := scanCategory(row)
	if err != nil {
		if isPgUniqueViolation(err) {
			return nil, domain.ErrCategoryAlreadyExists
		}
		return nil, err
	}
	return created, nil
}

// CreateDefaults seeds categories for an owner, skipping any that already exist
func (r *CategoryRepository) CreateDefaults(ctx context.Context, ownerID uuid.UUID, categories []domain.Category) error {
	batch := &pgx.Batch{}
	for _, c := range categories {
		batch.Queue(`
			INSERT INTO categories (owner_id, name, icon, color, type, is_default)
			VALUES ($1, $2, $3, $4, $5, TRUE)
			ON CONFLICT (owner_id, type, name) DO NOTHING`,
			ownerID, c.Name, stringPtrToPgText(c.Icon), c.Color, string(c.Type),
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range categories {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("seed default categories: %w", err)
		}
	}
	return nil
}

// GetByID retrieves a category by its ID within the owner's scope
func (r *CategoryRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Category, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE owner_id = $1 AND id = $2`, ownerID, id)
	category, err := scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCategoryNotFound
	}
	return category, err
}

// ListByOwner returns the owner's categories, defaults first, then by name
func (r *CategoryRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		WHERE owner_id = $1
		ORDER BY is_default DESC, name ASC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// Update changes name, icon, color and type
func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE categories
		SET name = $3, icon = $4, color = $5, type = $6, updated_at = NOW()
		WHERE owner_id = $1 AND id = $2
		RETURNING `+categoryColumns,
		category.OwnerID, category.ID, category.Name, stringPtrToPgText(category.Icon),
		category.Color, string(category.Type),
	)
	updated, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		if isPgUniqueViolation(err) {
			return nil, domain.ErrCategoryAlreadyExists
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a category. References from soft-deleted transactions and
// recurring expenses are nulled by the schema.
func (r *CategoryRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		if isPgForeignKeyViolation(err) {
			return domain.ErrCategoryInUse
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// CountActiveTransactions counts non-deleted transactions that reference the category
func (r *CategoryRepository) CountActiveTransactions(ctx context.Context, ownerID, id uuid.UUID) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM transactions
		WHERE owner_id = $1 AND category_id = $2 AND NOT is_deleted`, ownerID, id).Scan(&count)
	return count, err
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var (
		c     domain.Category
		icon  pgtype.Text
		cType string
	)
	if err := row.Scan(&c.ID, &c.OwnerID, &c.Name, &icon, &c.Color, &cType, &c.IsDefault, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Icon = pgTextToStringPtr(icon)
	c.Type = domain.CategoryType(cType)
	return &c, nil
}
