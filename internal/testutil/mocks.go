package testutil

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	mu       sync.RWMutex
	Users    map[string]*domain.User
	ByID     map[uuid.UUID]*domain.User
	CreateFn func(auth0ID, email string, name *string) (*domain.User, bool, error)
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users: make(map[string]*domain.User),
		ByID:  make(map[uuid.UUID]*domain.User),
	}
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if user, ok := m.ByID[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// GetByAuth0ID retrieves a user by Auth0 ID
func (m *MockUserRepository) GetByAuth0ID(_ context.Context, auth0ID string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if user, ok := m.Users[auth0ID]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// CreateOrGetByAuth0ID creates or retrieves a user by Auth0 ID
func (m *MockUserRepository) CreateOrGetByAuth0ID(_ context.Context, auth0ID, email string, name *string) (*domain.User, bool, error) {
	if m.CreateFn != nil {
		return m.CreateFn(auth0ID, email, name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if user, ok := m.Users[auth0ID]; ok {
		return user, false, nil
	}
	now := time.Now()
	user := &domain.User{
		ID:        uuid.New(),
		Auth0ID:   auth0ID,
		Email:     email,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.Users[auth0ID] = user
	m.ByID[user.ID] = user
	return user, true, nil
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Users[user.Auth0ID] = user
	m.ByID[user.ID] = user
}

// MockCategoryRepository is a mock implementation of domain.CategoryRepository
type MockCategoryRepository struct {
	mu         sync.RWMutex
	Categories map[uuid.UUID]*domain.Category
	// ActiveTransactionCounts overrides the reference count per category id
	ActiveTransactionCounts map[uuid.UUID]int64
	// Transactions, when set, is consulted for reference counts
	Transactions *MockTransactionRepository
	ListFn       func(ownerID uuid.UUID) ([]*domain.Category, error)
	DeleteFn     func(ownerID, id uuid.UUID) error
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories:              make(map[uuid.UUID]*domain.Category),
		ActiveTransactionCounts: make(map[uuid.UUID]int64),
	}
}

func (m *MockCategoryRepository) duplicate(c *domain.Category) bool {
	for _, existing := range m.Categories {
		if existing.ID != c.ID && existing.OwnerID == c.OwnerID && existing.Type == c.Type && existing.Name == c.Name {
			return true
		}
	}
	return false
}

// Create creates a new category, enforcing (owner, type, name) uniqueness
func (m *MockCategoryRepository) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.duplicate(category) {
		return nil, domain.ErrCategoryAlreadyExists
	}
	category.ID = uuid.New()
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	m.Categories[category.ID] = category
	return category, nil
}

// CreateDefaults seeds the default categories, skipping duplicates
func (m *MockCategoryRepository) CreateDefaults(ctx context.Context, ownerID uuid.UUID, categories []domain.Category) error {
	for i := range categories {
		c := categories[i]
		c.OwnerID = ownerID
		c.IsDefault = true
		if _, err := m.Create(ctx, &c); err != nil && err != domain.ErrCategoryAlreadyExists {
			return err
		}
	}
	return nil
}

// GetByID retrieves a category by ID within the owner's scope
func (m *MockCategoryRepository) GetByID(_ context.Context, ownerID, id uuid.UUID) (*domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.Categories[id]; ok && c.OwnerID == ownerID {
		return c, nil
	}
	return nil, domain.ErrCategoryNotFound
}

// ListByOwner returns categories default-first, then by name
func (m *MockCategoryRepository) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*domain.Category, error) {
	if m.ListFn != nil {
		return m.ListFn(ownerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Category, 0)
	for _, c := range m.Categories {
		if c.OwnerID == ownerID {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].IsDefault != result[j].IsDefault {
			return result[i].IsDefault
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// Update updates a category
func (m *MockCategoryRepository) Update(_ context.Context, category *domain.Category) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.Categories[category.ID]
	if !ok || existing.OwnerID != category.OwnerID {
		return nil, domain.ErrCategoryNotFound
	}
	if m.duplicate(category) {
		return nil, domain.ErrCategoryAlreadyExists
	}
	category.IsDefault = existing.IsDefault
	category.CreatedAt = existing.CreatedAt
	category.UpdatedAt = time.Now()
	m.Categories[category.ID] = category
	return category, nil
}

// Delete removes a category
func (m *MockCategoryRepository) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ownerID, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Categories[id]
	if !ok || c.OwnerID != ownerID {
		return domain.ErrCategoryNotFound
	}
	delete(m.Categories, id)
	return nil
}

// CountActiveTransactions returns the configured count, or counts the linked transaction mock
func (m *MockCategoryRepository) CountActiveTransactions(ctx context.Context, ownerID, id uuid.UUID) (int64, error) {
	m.mu.RLock()
	count, ok := m.ActiveTransactionCounts[id]
	m.mu.RUnlock()
	if ok {
		return count, nil
	}
	if m.Transactions != nil {
		return m.Transactions.countByCategory(ownerID, id), nil
	}
	return 0, nil
}

// AddCategory adds a category to the mock repository (helper for tests)
func (m *MockCategoryRepository) AddCategory(category *domain.Category) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	m.Categories[category.ID] = category
}

// MockTransactionRepository is a mock implementation of domain.TransactionRepository
type MockTransactionRepository struct {
	mu           sync.RWMutex
	Transactions map[uuid.UUID]*domain.Transaction
	seq          int
	created      map[uuid.UUID]int

	ListExpenseAmountsSinceFn func(ownerID uuid.UUID, since domain.Date) ([]domain.DatedAmount, error)
	ListExpensesBetweenFn     func(ownerID uuid.UUID, from, to domain.Date) ([]*domain.Transaction, error)
	ListRecentExpensesFn      func(ownerID uuid.UUID, limit int) ([]*domain.Transaction, error)
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		Transactions: make(map[uuid.UUID]*domain.Transaction),
		created:      make(map[uuid.UUID]int),
	}
}

// Create creates a new transaction
func (m *MockTransactionRepository) Create(_ context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	m.AddTransaction(transaction)
	return transaction, nil
}

// GetByID retrieves a non-deleted transaction within the owner's scope
func (m *MockTransactionRepository) GetByID(_ context.Context, ownerID, id uuid.UUID) (*domain.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.Transactions[id]; ok && t.OwnerID == ownerID && !t.IsDeleted {
		return t, nil
	}
	return nil, domain.ErrTransactionNotFound
}

// Update updates a transaction
func (m *MockTransactionRepository) Update(_ context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.Transactions[transaction.ID]
	if !ok || existing.OwnerID != transaction.OwnerID || existing.IsDeleted {
		return nil, domain.ErrTransactionNotFound
	}
	transaction.CreatedAt = existing.CreatedAt
	transaction.RecurringExpenseID = existing.RecurringExpenseID
	transaction.UpdatedAt = time.Now()
	m.Transactions[transaction.ID] = transaction
	return transaction, nil
}

// SoftDelete marks a transaction as deleted
func (m *MockTransactionRepository) SoftDelete(_ context.Context, ownerID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.Transactions[id]
	if !ok || t.OwnerID != ownerID || t.IsDeleted {
		return domain.ErrTransactionNotFound
	}
	t.IsDeleted = true
	return nil
}

// List filters, orders (date desc, insertion desc) and pages the owner's transactions
func (m *MockTransactionRepository) List(_ context.Context, ownerID uuid.UUID, f domain.TransactionFilters, limit, offset int) ([]*domain.Transaction, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]*domain.Transaction, 0)
	for _, t := range m.Transactions {
		if t.OwnerID != ownerID || t.IsDeleted {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(t.Description), strings.ToLower(f.Search)) {
			continue
		}
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		if f.CategoryID != nil && (t.CategoryID == nil || *t.CategoryID != *f.CategoryID) {
			continue
		}
		if f.PaymentMethod != "" && t.PaymentMethod != f.PaymentMethod {
			continue
		}
		if f.DateFrom != nil && t.Date.Before(*f.DateFrom) {
			continue
		}
		if f.DateTo != nil && t.Date.After(*f.DateTo) {
			continue
		}
		matched = append(matched, t)
	}
	m.sortNewestFirst(matched)

	total := int64(len(matched))
	if offset >= len(matched) {
		return []*domain.Transaction{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

// ListExpenseAmountsSince returns date/amount of non-deleted expenses on or after since
func (m *MockTransactionRepository) ListExpenseAmountsSince(_ context.Context, ownerID uuid.UUID, since domain.Date) ([]domain.DatedAmount, error) {
	if m.ListExpenseAmountsSinceFn != nil {
		return m.ListExpenseAmountsSinceFn(ownerID, since)
	}
	result := make([]domain.DatedAmount, 0)
	for _, t := range m.expenses(ownerID) {
		if !t.Date.Before(since) {
			result = append(result, domain.DatedAmount{Date: t.Date, Amount: t.Amount})
		}
	}
	return result, nil
}

// ListExpensesBetween returns non-deleted expenses dated within [from, to]
func (m *MockTransactionRepository) ListExpensesBetween(_ context.Context, ownerID uuid.UUID, from, to domain.Date) ([]*domain.Transaction, error) {
	if m.ListExpensesBetweenFn != nil {
		return m.ListExpensesBetweenFn(ownerID, from, to)
	}
	result := make([]*domain.Transaction, 0)
	for _, t := range m.expenses(ownerID) {
		if !t.Date.Before(from) && !t.Date.After(to) {
			result = append(result, t)
		}
	}
	return result, nil
}

// ListRecentExpenses returns the newest non-deleted expenses
func (m *MockTransactionRepository) ListRecentExpenses(_ context.Context, ownerID uuid.UUID, limit int) ([]*domain.Transaction, error) {
	if m.ListRecentExpensesFn != nil {
		return m.ListRecentExpensesFn(ownerID, limit)
	}
	result := m.expenses(ownerID)
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockTransactionRepository) expenses(ownerID uuid.UUID) []*domain.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Transaction, 0)
	for _, t := range m.Transactions {
		if t.OwnerID == ownerID && !t.IsDeleted && t.Type == domain.TransactionTypeExpense {
			result = append(result, t)
		}
	}
	m.sortNewestFirst(result)
	return result
}

func (m *MockTransactionRepository) sortNewestFirst(list []*domain.Transaction) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.After(list[j].Date)
		}
		return m.created[list[i].ID] > m.created[list[j].ID]
	})
}

func (m *MockTransactionRepository) countByCategory(ownerID, categoryID uuid.UUID) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, t := range m.Transactions {
		if t.OwnerID == ownerID && !t.IsDeleted && t.CategoryID != nil && *t.CategoryID == categoryID {
			count++
		}
	}
	return count
}

// AddTransaction adds a transaction to the mock repository (helper for tests)
func (m *MockTransactionRepository) AddTransaction(transaction *domain.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if transaction.ID == uuid.Nil {
		transaction.ID = uuid.New()
	}
	if transaction.CreatedAt.IsZero() {
		transaction.CreatedAt = time.Now()
		transaction.UpdatedAt = transaction.CreatedAt
	}
	m.seq++
	m.created[transaction.ID] = m.seq
	m.Transactions[transaction.ID] = transaction
}

// ByRecurring returns the transactions generated from a recurring expense, oldest first
func (m *MockTransactionRepository) ByRecurring(recurringID uuid.UUID) []*domain.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Transaction, 0)
	for _, t := range m.Transactions {
		if t.RecurringExpenseID != nil && *t.RecurringExpenseID == recurringID {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result
}

// MockIncomeSourceRepository is a mock implementation of domain.IncomeSourceRepository
type MockIncomeSourceRepository struct {
	mu      sync.RWMutex
	Sources map[uuid.UUID]*domain.IncomeSource
	Now     func() time.Time

	ListByMonthFn func(ownerID uuid.UUID, month, year int) ([]*domain.IncomeSource, error)
	ListByYearsFn func(ownerID uuid.UUID, years []int) ([]*domain.IncomeSource, error)
}

// NewMockIncomeSourceRepository creates a new MockIncomeSourceRepository
func NewMockIncomeSourceRepository() *MockIncomeSourceRepository {
	return &MockIncomeSourceRepository{
		Sources: make(map[uuid.UUID]*domain.IncomeSource),
		Now:     time.Now,
	}
}

func (m *MockIncomeSourceRepository) stampReceived(s *domain.IncomeSource, previous *time.Time) {
	if !s.IsReceived {
		s.ReceivedAt = nil
		return
	}
	if previous != nil {
		s.ReceivedAt = previous
		return
	}
	now := m.Now()
	s.ReceivedAt = &now
}

// Create creates a new income source
func (m *MockIncomeSourceRepository) Create(_ context.Context, source *domain.IncomeSource) (*domain.IncomeSource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	source.ID = uuid.New()
	source.CreatedAt = m.Now()
	source.UpdatedAt = source.CreatedAt
	m.stampReceived(source, nil)
	m.Sources[source.ID] = source
	return source, nil
}

// GetByID retrieves an income source within the owner's scope
func (m *MockIncomeSourceRepository) GetByID(_ context.Context, ownerID, id uuid.UUID) (*domain.IncomeSource, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.Sources[id]; ok && s.OwnerID == ownerID {
		return s, nil
	}
	return nil, domain.ErrIncomeSourceNotFound
}

// Update updates an income source
func (m *MockIncomeSourceRepository) Update(_ context.Context, source *domain.IncomeSource) (*domain.IncomeSource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.Sources[source.ID]
	if !ok || existing.OwnerID != source.OwnerID {
		return nil, domain.ErrIncomeSourceNotFound
	}
	source.CreatedAt = existing.CreatedAt
	source.UpdatedAt = m.Now()
	m.stampReceived(source, existing.ReceivedAt)
	m.Sources[source.ID] = source
	return source, nil
}

// SetReceived flips the received flag
func (m *MockIncomeSourceRepository) SetReceived(_ context.Context, ownerID, id uuid.UUID, received bool) (*domain.IncomeSource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.Sources[id]
	if !ok || s.OwnerID != ownerID {
		return nil, domain.ErrIncomeSourceNotFound
	}
	s.IsReceived = received
	m.stampReceived(s, nil)
	return s, nil
}

// Delete removes an income source
func (m *MockIncomeSourceRepository) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.Sources[id]
	if !ok || s.OwnerID != ownerID {
		return domain.ErrIncomeSourceNotFound
	}
	delete(m.Sources, id)
	return nil
}

// ListByMonth returns the month's income sources, newest first
func (m *MockIncomeSourceRepository) ListByMonth(_ context.Context, ownerID uuid.UUID, month, year int) ([]*domain.IncomeSource, error) {
	if m.ListByMonthFn != nil {
		return m.ListByMonthFn(ownerID, month, year)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.IncomeSource, 0)
	for _, s := range m.Sources {
		if s.OwnerID == ownerID && s.Month == month && s.Year == year {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

// ListByYears returns the income sources of any of the given years
func (m *MockIncomeSourceRepository) ListByYears(_ context.Context, ownerID uuid.UUID, years []int) ([]*domain.IncomeSource, error) {
	if m.ListByYearsFn != nil {
		return m.ListByYearsFn(ownerID, years)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	wanted := make(map[int]bool, len(years))
	for _, y := range years {
		wanted[y] = true
	}
	result := make([]*domain.IncomeSource, 0)
	for _, s := range m.Sources {
		if s.OwnerID == ownerID && wanted[s.Year] {
			result = append(result, s)
		}
	}
	return result, nil
}

// AddIncomeSource adds an income source to the mock repository (helper for tests)
func (m *MockIncomeSourceRepository) AddIncomeSource(source *domain.IncomeSource) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if source.ID == uuid.Nil {
		source.ID = uuid.New()
	}
	m.Sources[source.ID] = source
}

// MockRecurringRepository is a mock implementation of domain.RecurringRepository
type MockRecurringRepository struct {
	mu        sync.RWMutex
	Recurring map[uuid.UUID]*domain.RecurringExpense
	// Transactions receives the occurrences recorded by ApplyAdvance
	Transactions *MockTransactionRepository

	ListByOwnerFn  func(ownerID uuid.UUID) ([]*domain.RecurringExpense, error)
	ListDueFn      func(asOf domain.Date) ([]*domain.RecurringExpense, error)
	ApplyAdvanceFn func(adv *domain.RecurringAdvance) (bool, error)
}

// NewMockRecurringRepository creates a new MockRecurringRepository
func NewMockRecurringRepository() *MockRecurringRepository {
	return &MockRecurringRepository{
		Recurring: make(map[uuid.UUID]*domain.RecurringExpense),
	}
}

// Create creates a new recurring expense
func (m *MockRecurringRepository) Create(_ context.Context, rec *domain.RecurringExpense) (*domain.RecurringExpense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.ID = uuid.New()
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	m.Recurring[rec.ID] = rec
	return rec, nil
}

// GetByID retrieves a recurring expense within the owner's scope
func (m *MockRecurringRepository) GetByID(_ context.Context, ownerID, id uuid.UUID) (*domain.RecurringExpense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.Recurring[id]; ok && r.OwnerID == ownerID {
		return r, nil
	}
	return nil, domain.ErrRecurringNotFound
}

// ListByOwner returns recurring expenses active-first, then soonest next due date
func (m *MockRecurringRepository) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*domain.RecurringExpense, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ownerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.RecurringExpense, 0)
	for _, r := range m.Recurring {
		if r.OwnerID == ownerID {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].IsActive != result[j].IsActive {
			return result[i].IsActive
		}
		return result[i].NextDueDate.Before(result[j].NextDueDate)
	})
	return result, nil
}

// Update replaces the editable fields, keeping the stored next due date
func (m *MockRecurringRepository) Update(_ context.Context, rec *domain.RecurringExpense) (*domain.RecurringExpense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.Recurring[rec.ID]
	if !ok || existing.OwnerID != rec.OwnerID {
		return nil, domain.ErrRecurringNotFound
	}
	rec.NextDueDate = existing.NextDueDate
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Now()
	m.Recurring[rec.ID] = rec
	return rec, nil
}

// SetActive changes only the active flag
func (m *MockRecurringRepository) SetActive(_ context.Context, ownerID, id uuid.UUID, active bool) (*domain.RecurringExpense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.Recurring[id]
	if !ok || r.OwnerID != ownerID {
		return nil, domain.ErrRecurringNotFound
	}
	r.IsActive = active
	return r, nil
}

// Delete removes a recurring expense
func (m *MockRecurringRepository) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.Recurring[id]
	if !ok || r.OwnerID != ownerID {
		return domain.ErrRecurringNotFound
	}
	delete(m.Recurring, id)
	return nil
}

// ListDue returns expenses of every owner due on or before asOf, including
// paused ones that have not ended
func (m *MockRecurringRepository) ListDue(_ context.Context, asOf domain.Date) ([]*domain.RecurringExpense, error) {
	if m.ListDueFn != nil {
		return m.ListDueFn(asOf)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.RecurringExpense, 0)
	for _, r := range m.Recurring {
		ended := r.EndDate != nil && r.EndDate.Before(asOf)
		if !r.NextDueDate.After(asOf) && (r.IsActive || !ended) {
			copied := *r
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].NextDueDate.Before(result[j].NextDueDate) })
	return result, nil
}

// ApplyAdvance stores the advance when the stored next due date still matches
func (m *MockRecurringRepository) ApplyAdvance(ctx context.Context, adv *domain.RecurringAdvance) (bool, error) {
	if m.ApplyAdvanceFn != nil {
		return m.ApplyAdvanceFn(adv)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.Recurring[adv.Recurring.ID]
	if !ok || stored.IsActive != adv.Recurring.IsActive || !stored.NextDueDate.Equal(adv.PrevNextDueDate) {
		return false, nil
	}

	if m.Transactions != nil {
		for _, occurrence := range adv.Occurrences {
			recurringID := stored.ID
			_, err := m.Transactions.Create(ctx, &domain.Transaction{
				OwnerID:            stored.OwnerID,
				CategoryID:         stored.CategoryID,
				RecurringExpenseID: &recurringID,
				Type:               domain.TransactionTypeExpense,
				Amount:             stored.Amount,
				Description:        stored.Name,
				Date:               occurrence,
				PaymentMethod:      stored.PaymentMethod,
				Note:               stored.Description,
			})
			if err != nil {
				return false, fmt.Errorf("record occurrence: %w", err)
			}
		}
	}

	stored.NextDueDate = adv.NextDueDate
	stored.IsActive = adv.IsActive
	return true, nil
}

// AddRecurring adds a recurring expense to the mock repository (helper for tests)
func (m *MockRecurringRepository) AddRecurring(rec *domain.RecurringExpense) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	m.Recurring[rec.ID] = rec
}

// MockExportStore is an in-memory storage.ExportStore
type MockExportStore struct {
	mu      sync.Mutex
	Objects map[string][]byte
	PutErr  error
}

// NewMockExportStore creates a new MockExportStore
func NewMockExportStore() *MockExportStore {
	return &MockExportStore{Objects: make(map[string][]byte)}
}

// Put stores the object
func (m *MockExportStore) Put(_ context.Context, key string, data []byte, _ string) error {
	if m.PutErr != nil {
		return m.PutErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Objects[key] = data
	return nil
}

// PresignedURL returns a fake signed URL for key
func (m *MockExportStore) PresignedURL(_ context.Context, key string, expiry time.Duration) (string, error) {
	return fmt.Sprintf("https://exports.test/%s?expires=%d", key, int(expiry.Seconds())), nil
}
