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

// RecurringRepository implements domain.RecurringRepository using PostgreSQL
type RecurringRepository struct {
	pool *pgxpool.Pool
}

// NewRecurringRepository creates a new RecurringRepository
func NewRecurringRepository(pool *pgxpool.Pool) *RecurringRepository {
	return &RecurringRepository{pool: pool}
}

const recurringColumns = `r.id, r.owner_id, r.category_id, r.name, r.description, r.amount, r.frequency,
	r.payment_method, r.start_date, r.end_date, r.next_due_date, r.is_active, r.created_at, r.updated_at`

const recurringSelect = `SELECT ` + recurringColumns + `, ` + categoryRefColumns + `
	FROM recurring_expenses r
	LEFT JOIN categories c ON c.id = r.category_id`

// Create inserts a recurring expense
func (r *RecurringRepository) Create(ctx context.Context, rec *domain.RecurringExpense) (*domain.RecurringExpense, error) {
	amount, err := decimalToPgNumeric(rec.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	var id uuid.UUID
	err = r.pool.QueryRow(ctx, `
		INSERT INTO recurring_expenses (owner_id, category_id, name, description, amount, frequency,
			payment_method, start_date, end_date, next_due_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		rec.OwnerID, uuidPtrToPg(rec.CategoryID), rec.Name, stringPtrToPgText(rec.Description), amount,
		string(rec.Frequency), string(rec.PaymentMethod), dateToPg(rec.StartDate), datePtrToPg(rec.EndDate),
		dateToPg(rec.NextDueDate), rec.IsActive,
	).Scan(&id)
	if err != nil {
		if isPgForeignKeyViolation(err) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return r.GetByID(ctx, rec.OwnerID, id)
}

// GetByID retrieves a recurring expense within the owner's scope
func (r *RecurringRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.RecurringExpense, error) {
	row := r.pool.QueryRow(ctx, recurringSelect+` WHERE r.owner_id = $1 AND r.id = $2`, ownerID, id)
	rec, err := scanRecurring(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRecurringNotFound
	}
	return rec, err
}

// ListByOwner returns active expenses first, then by soonest next due date
func (r *RecurringRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.RecurringExpense, error) {
	return r.query(ctx, recurringSelect+`
		WHERE r.owner_id = $1
		ORDER BY r.is_active DESC, r.next_due_date ASC, r.created_at ASC`, ownerID)
}

// Update replaces the editable fields. next_due_date is never written here.
func (r *RecurringRepository) Update(ctx context.Context, rec *domain.RecurringExpense) (*domain.RecurringExpense, error) {
	amount, err := decimalToPgNumeric(rec.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE recurring_expenses
		SET category_id = $3, name = $4, description = $5, amount = $6, frequency = $7,
		    payment_method = $8, start_date = $9, end_date = $10, is_active = $11, updated_at = NOW()
		WHERE owner_id = $1 AND id = $2`,
		rec.OwnerID, rec.ID, uuidPtrToPg(rec.CategoryID), rec.Name, stringPtrToPgText(rec.Description),
		amount, string(rec.Frequency), string(rec.PaymentMethod), dateToPg(rec.StartDate),
		datePtrToPg(rec.EndDate), rec.IsActive,
	)
	if err != nil {
		if isPgForeignKeyViolation(err) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrRecurringNotFound
	}
	return r.GetByID(ctx, rec.OwnerID, rec.ID)
}

// SetActive changes only is_active
func (r *RecurringRepository) SetActive(ctx context.Context, ownerID, id uuid.UUID, active bool) (*domain.RecurringExpense, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE recurring_expenses SET is_active = $3, updated_at = NOW()
		WHERE owner_id = $1 AND id = $2`, ownerID, id, active)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrRecurringNotFound
	}
	return r.GetByID(ctx, ownerID, id)
}

// Delete hard-deletes a recurring expense. Generated transactions keep their rows.
func (r *RecurringRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM recurring_expenses WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecurringNotFound
	}
	return nil
}

// ListDue returns the records due on or before asOf: active ones, and paused
// ones that have not ended, whose due date only rolls forward
func (r *RecurringRepository) ListDue(ctx context.Context, asOf domain.Date) ([]*domain.RecurringExpense, error) {
	return r.query(ctx, recurringSelect+`
		WHERE r.next_due_date <= $1
		  AND (r.is_active OR r.end_date IS NULL OR r.end_date >= $1)
		ORDER BY r.next_due_date ASC`, dateToPg(asOf))
}

// ApplyAdvance records the advance in one database transaction. The row is
// locked and its next_due_date compared with adv.PrevNextDueDate so a concurrent
// run that already advanced it is skipped.
func (r *RecurringRepository) ApplyAdvance(ctx context.Context, adv *domain.RecurringAdvance) (bool, error) {
	rec := adv.Recurring

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var (
		current  pgtype.Date
		isActive bool
	)
	err = tx.QueryRow(ctx, `
		SELECT next_due_date, is_active FROM recurring_expenses
		WHERE id = $1 FOR UPDATE`, rec.ID).Scan(&current, &isActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	if isActive != rec.IsActive || !pgToDate(current).Equal(adv.PrevNextDueDate) {
		return false, nil
	}

	amount, err := decimalToPgNumeric(rec.Amount)
	if err != nil {
		return false, fmt.Errorf("invalid amount: %w", err)
	}
	for _, occurrence := range adv.Occurrences {
		_, err := tx.Exec(ctx, `
			INSERT INTO transactions (owner_id, category_id, recurring_expense_id, type, amount,
				description, date, payment_method, note)
			VALUES ($1, $2, $3, 'expense', $4, $5, $6, $7, $8)
			ON CONFLICT (recurring_expense_id, date) WHERE recurring_expense_id IS NOT NULL DO NOTHING`,
			rec.OwnerID, uuidPtrToPg(rec.CategoryID), rec.ID, amount, rec.Name, dateToPg(occurrence),
			string(rec.PaymentMethod), stringPtrToPgText(rec.Description),
		)
		if err != nil {
			return false, fmt.Errorf("record occurrence %s: %w", occurrence, err)
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE recurring_expenses SET next_due_date = $2, is_active = $3, updated_at = NOW()
		WHERE id = $1`, rec.ID, dateToPg(adv.NextDueDate), adv.IsActive)
	if err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (r *RecurringRepository) query(ctx context.Context, sql string, args ...any) ([]*domain.RecurringExpense, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.RecurringExpense, 0)
	for rows.Next() {
		rec, err := scanRecurring(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func scanRecurring(row pgx.Row) (*domain.RecurringExpense, error) {
	var (
		rec         domain.RecurringExpense
		categoryID  pgtype.UUID
		description pgtype.Text
		amount      pgtype.Numeric
		frequency   string
		method      string
		startDate   pgtype.Date
		endDate     pgtype.Date
		nextDue     pgtype.Date
		category    categoryRefRow
	)
	dest := append([]any{
		&rec.ID, &rec.OwnerID, &categoryID, &rec.Name, &description, &amount, &frequency,
		&method, &startDate, &endDate, &nextDue, &rec.IsActive, &rec.CreatedAt, &rec.UpdatedAt,
	}, category.dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	rec.CategoryID = pgToUUIDPtr(categoryID)
	rec.Description = pgTextToStringPtr(description)
	rec.Amount = pgNumericToDecimal(amount)
	rec.Frequency = domain.Frequency(frequency)
	rec.PaymentMethod = domain.PaymentMethod(method)
	rec.StartDate = pgToDate(startDate)
	rec.EndDate = pgToDatePtr(endDate)
	rec.NextDueDate = pgToDate(nextDue)
	rec.Category = category.toDomain()
	return &rec, nil
}
