package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
)

// TransactionRepository implements domain.TransactionRepository using PostgreSQL
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const transactionColumns = `t.id, t.owner_id, t.category_id, t.recurring_expense_id, t.type, t.amount,
	t.description, t.date, t.payment_method, t.note, t.is_deleted, t.created_at, t.updated_at`

const transactionSelect = `SELECT ` + transactionColumns + `, ` + categoryRefColumns + `
	FROM transactions t
	LEFT JOIN categories c ON c.id = t.category_id`

// Create inserts a transaction and returns it with its category
func (r *TransactionRepository) Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	return insertTransaction(ctx, r.pool, transaction)
}

func insertTransaction(ctx context.Context, db DBTX, transaction *domain.Transaction) (*domain.Transaction, error) {
	amount, err := decimalToPgNumeric(transaction.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	var id uuid.UUID
	err = db.QueryRow(ctx, `
		INSERT INTO transactions (owner_id, category_id, recurring_expense_id, type, amount,
			description, date, payment_method, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		transaction.OwnerID, uuidPtrToPg(transaction.CategoryID), uuidPtrToPg(transaction.RecurringExpenseID),
		string(transaction.Type), amount, transaction.Description, dateToPg(transaction.Date),
		string(transaction.PaymentMethod), stringPtrToPgText(transaction.Note),
	).Scan(&id)
	if err != nil {
		if isPgForeignKeyViolation(err) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return getTransaction(ctx, db, transaction.OwnerID, id)
}

// GetByID retrieves a non-deleted transaction within the owner's scope
func (r *TransactionRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Transaction, error) {
	return getTransaction(ctx, r.pool, ownerID, id)
}

func getTransaction(ctx context.Context, db DBTX, ownerID, id uuid.UUID) (*domain.Transaction, error) {
	row := db.QueryRow(ctx, transactionSelect+`
		WHERE t.owner_id = $1 AND t.id = $2 AND NOT t.is_deleted`, ownerID, id)
	transaction, err := scanTransaction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTransactionNotFound
	}
	return transaction, err
}

// Update replaces the editable fields of a transaction
func (r *TransactionRepository) Update(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	amount, err := decimalToPgNumeric(transaction.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE transactions
		SET category_id = $3, type = $4, amount = $5, description = $6, date = $7,
		    payment_method = $8, note = $9, updated_at = NOW()
		WHERE owner_id = $1 AND id = $2 AND NOT is_deleted`,
		transaction.OwnerID, transaction.ID, uuidPtrToPg(transaction.CategoryID), string(transaction.Type),
		amount, transaction.Description, dateToPg(transaction.Date), string(transaction.PaymentMethod),
		stringPtrToPgText(transaction.Note),
	)
	if err != nil {
		if isPgForeignKeyViolation(err) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrTransactionNotFound
	}
	return r.GetByID(ctx, transaction.OwnerID, transaction.ID)
}

// SoftDelete marks a transaction as deleted
func (r *TransactionRepository) SoftDelete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE transactions SET is_deleted = TRUE, updated_at = NOW()
		WHERE owner_id = $1 AND id = $2 AND NOT is_deleted`, ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// List returns one page of non-deleted transactions matching filters, newest
// first, and the number of rows matching without paging.
func (r *TransactionRepository) List(ctx context.Context, ownerID uuid.UUID, filters domain.TransactionFilters, limit, offset int) ([]*domain.Transaction, int64, error) {
	where, args := transactionFilterClause(ownerID, filters)

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions t WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`%s WHERE %s ORDER BY t.date DESC, t.created_at DESC LIMIT $%d OFFSET $%d`,
		transactionSelect, where, len(args)-1, len(args))

	items, err := queryTransactions(ctx, r.pool, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// transactionFilterClause builds the WHERE clause shared by the list and count queries
func transactionFilterClause(ownerID uuid.UUID, f domain.TransactionFilters) (string, []any) {
	conds := []string{"t.owner_id = $1", "NOT t.is_deleted"}
	args := []any{ownerID}

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if s := strings.TrimSpace(f.Search); s != "" {
		add("t.description ILIKE $%d", "%"+escapeLike(s)+"%")
	}
	if f.Type != "" {
		add("t.type = $%d", string(f.Type))
	}
	if f.CategoryID != nil {
		add("t.category_id = $%d", *f.CategoryID)
	}
	if f.PaymentMethod != "" {
		add("t.payment_method = $%d", string(f.PaymentMethod))
	}
	if f.DateFrom != nil {
		add("t.date >= $%d", dateToPg(*f.DateFrom))
	}
	if f.DateTo != nil {
		add("t.date <= $%d", dateToPg(*f.DateTo))
	}
	return strings.Join(conds, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// ListExpenseAmountsSince returns date and amount of every expense on or after since
func (r *TransactionRepository) ListExpenseAmountsSince(ctx context.Context, ownerID uuid.UUID, since domain.Date) ([]domain.DatedAmount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT date, amount FROM transactions
		WHERE owner_id = $1 AND type = 'expense' AND NOT is_deleted AND date >= $2`,
		ownerID, dateToPg(since))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	amounts := make([]domain.DatedAmount, 0)
	for rows.Next() {
		var (
			date   pgtype.Date
			amount pgtype.Numeric
		)
		if err := rows.Scan(&date, &amount); err != nil {
			return nil, err
		}
		amounts = append(amounts, domain.DatedAmount{Date: pgToDate(date), Amount: pgNumericToDecimal(amount)})
	}
	return amounts, rows.Err()
}

// ListExpensesBetween returns expenses dated within [from, to] with their category
func (r *TransactionRepository) ListExpensesBetween(ctx context.Context, ownerID uuid.UUID, from, to domain.Date) ([]*domain.Transaction, error) {
	return queryTransactions(ctx, r.pool, transactionSelect+`
		WHERE t.owner_id = $1 AND t.type = 'expense' AND NOT t.is_deleted
		  AND t.date >= $2 AND t.date <= $3
		ORDER BY t.date DESC, t.created_at DESC`,
		ownerID, dateToPg(from), dateToPg(to))
}

// ListRecentExpenses returns the newest expenses with their category
func (r *TransactionRepository) ListRecentExpenses(ctx context.Context, ownerID uuid.UUID, limit int) ([]*domain.Transaction, error) {
	return queryTransactions(ctx, r.pool, transactionSelect+`
		WHERE t.owner_id = $1 AND t.type = 'expense' AND NOT t.is_deleted
		ORDER BY t.date DESC, t.created_at DESC
		LIMIT $2`, ownerID, limit)
}

func queryTransactions(ctx context.Context, db DBTX, query string, args ...any) ([]*domain.Transaction, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		t           domain.Transaction
		categoryID  pgtype.UUID
		recurringID pgtype.UUID
		txType      string
		amount      pgtype.Numeric
		date        pgtype.Date
		method      string
		note        pgtype.Text
		category    categoryRefRow
	)
	dest := append([]any{
		&t.ID, &t.OwnerID, &categoryID, &recurringID, &txType, &amount,
		&t.Description, &date, &method, &note, &t.IsDeleted, &t.CreatedAt, &t.UpdatedAt,
	}, category.dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	t.CategoryID = pgToUUIDPtr(categoryID)
	t.RecurringExpenseID = pgToUUIDPtr(recurringID)
	t.Type = domain.TransactionType(txType)
	t.Amount = pgNumericToDecimal(amount)
	t.Date = pgToDate(date)
	t.PaymentMethod = domain.PaymentMethod(method)
	t.Note = pgTextToStringPtr(note)
	t.Category = category.toDomain()
	return &t, nil
}
