package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/ledgerly/ledgerly-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCategoryInput() domain.CategoryInput {
	return domain.CategoryInput{Name: "Coffee", Icon: "☕", Color: "#a16207", Type: "expense"}
}

func TestCategoryList_GroupsByType(t *testing.T) {
	repo := testutil.NewMockCategoryRepository()
	service := NewCategoryService(repo)
	owner := uuid.New()

	require.NoError(t, repo.CreateDefaults(context.Background(), owner, domain.DefaultCategories()))
	repo.AddCategory(&domain.Category{OwnerID: uuid.New(), Name: "Foreign", Color: "#000000", Type: domain.CategoryTypeExpense})

	groups, err := service.List(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, groups.Expense, 8)
	assert.Len(t, groups.Income, 3)
	for _, c := range groups.Expense {
		assert.Equal(t, domain.CategoryTypeExpense, c.Type)
		assert.Equal(t, owner, c.OwnerID)
	}
}

func TestCategoryList_Unauthorized(t *testing.T) {
	service := NewCategoryService(testutil.NewMockCategoryRepository())

	_, err := service.List(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCategoryCreate_Success(t *testing.T) {
	repo := testutil.NewMockCategoryRepository()
	service := NewCategoryService(repo)
	publisher := &recordingPublisher{}
	service.SetEventPublisher(publisher)
	owner := uuid.New()

	input := validCategoryInput()
	input.Name = "  Coffee  "

	category, err := service.Create(context.Background(), owner, input)
	require.NoError(t, err)
	assert.Equal(t, "Coffee", category.Name)
	assert.Equal(t, "☕", *category.Icon)
	assert.False(t, category.IsDefault)
	assert.Equal(t, []string{"category.created"}, publisher.types())
}

func TestCategoryCreate_Validation(t *testing.T) {
	service := NewCategoryService(testutil.NewMockCategoryRepository())

	input := validCategoryInput()
	input.Color = "red"

	_, err := service.Create(context.Background(), uuid.New(), input)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Must be a valid hex color", vErr.Message)
}

func TestCategoryCreate_DuplicateNameConflict(t *testing.T) {
	repo := testutil.NewMockCategoryRepository()
	service := NewCategoryService(repo)
	owner := uuid.New()

	_, err := service.Create(context.Background(), owner, validCategoryInput())
	require.NoError(t, err)

	_, err = service.Create(context.Background(), owner, validCategoryInput())
	require.ErrorIs(t, err, domain.ErrCategoryAlreadyExists)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.EqualError(t, err, `A expense category named "Coffee" already exists.`)

	// same name with the other type is allowed
	income := validCategoryInput()
	income.Type = "income"
	_, err = service.Create(context.Background(), owner, income)
	assert.NoError(t, err)

	// and so is another owner
	_, err = service.Create(context.Background(), uuid.New(), validCategoryInput())
	assert.NoError(t, err)
}

func TestCategoryUpdate(t *testing.T) {
	repo := testutil.NewMockCategoryRepository()
	service := NewCategoryService(repo)
	owner := uuid.New()

	created, err := service.Create(context.Background(), owner, validCategoryInput())
	require.NoError(t, err)

	input := validCategoryInput()
	input.Name = "Cafés"
	input.Color = "#123456"
	updated, err := service.Update(context.Background(), owner, created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Cafés", updated.Name)
	assert.Equal(t, "#123456", updated.Color)

	_, err = service.Update(context.Background(), uuid.New(), created.ID, input)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCategoryDelete_BlockedByActiveTransactions(t *testing.T) {
	categories := testutil.NewMockCategoryRepository()
	transactions := testutil.NewMockTransactionRepository()
	categories.Transactions = transactions
	service := NewCategoryService(categories)
	owner := uuid.New()

	category := testutil.FakeCategory(owner, "Food", "#f97316")
	categories.AddCategory(category)

	for i := 0; i < 3; i++ {
		tx := testutil.FakeExpense(owner, domain.NewDate(2026, 10, 1+i), testutil.FakeAmount(1, 100))
		tx.CategoryID = &category.ID
		transactions.AddTransaction(tx)
	}

	err := service.Delete(context.Background(), owner, category.ID)
	var refErr *domain.ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, int64(3), refErr.Count)
	assert.ErrorIs(t, err, domain.ErrReferenced)
	assert.Equal(t, "This category has 3 transactions. Reassign or delete them first.", err.Error())

	_, err = categories.GetByID(context.Background(), owner, category.ID)
	assert.NoError(t, err, "category must remain")
}

func TestCategoryDelete_SingularMessage(t *testing.T) {
	categories := testutil.NewMockCategoryRepository()
	service := NewCategoryService(categories)
	owner := uuid.New()

	category := testutil.FakeCategory(owner, "Food", "#f97316")
	categories.AddCategory(category)
	categories.ActiveTransactionCounts[category.ID] = 1

	err := service.Delete(context.Background(), owner, category.ID)
	assert.EqualError(t, err, "This category has 1 transaction. Reassign or delete them first.")
}

func TestCategoryDelete_SoftDeletedTransactionsDoNotBlock(t *testing.T) {
	categories := testutil.NewMockCategoryRepository()
	transactions := testutil.NewMockTransactionRepository()
	categories.Transactions = transactions
	service := NewCategoryService(categories)
	publisher := &recordingPublisher{}
	service.SetEventPublisher(publisher)
	owner := uuid.New()

	category := testutil.FakeCategory(owner, "Food", "#f97316")
	categories.AddCategory(category)

	tx := testutil.FakeExpense(owner, domain.NewDate(2026, 10, 1), testutil.FakeAmount(1, 100))
	tx.CategoryID = &category.ID
	transactions.AddTransaction(tx)
	require.NoError(t, transactions.SoftDelete(context.Background(), owner, tx.ID))

	require.NoError(t, service.Delete(context.Background(), owner, category.ID))
	_, err := categories.GetByID(context.Background(), owner, category.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.Equal(t, []string{"category.deleted"}, publisher.types())
}

func TestCategoryDelete_ForeignKeyRaceMapsToReferenceError(t *testing.T) {
	categories := testutil.NewMockCategoryRepository()
	service := NewCategoryService(categories)
	owner := uuid.New()

	category := testutil.FakeCategory(owner, "Food", "#f97316")
	categories.AddCategory(category)
	categories.DeleteFn = func(uuid.UUID, uuid.UUID) error { return domain.ErrCategoryInUse }

	err := service.Delete(context.Background(), owner, category.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryInUse)
}

func TestCategoryDelete_NotFound(t *testing.T) {
	service := NewCategoryService(testutil.NewMockCategoryRepository())

	err := service.Delete(context.Background(), uuid.New(), uuid.New())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCategoryCanDelete(t *testing.T) {
	categories := testutil.NewMockCategoryRepository()
	service := NewCategoryService(categories)
	owner := uuid.New()

	category := testutil.FakeCategory(owner, "Food", "#f97316")
	categories.AddCategory(category)

	resp, err := service.CanDelete(context.Background(), owner, category.ID)
	require.NoError(t, err)
	assert.True(t, resp.CanDelete)

	categories.ActiveTransactionCounts[category.ID] = 4
	resp, err = service.CanDelete(context.Background(), owner, category.ID)
	require.NoError(t, err)
	assert.False(t, resp.CanDelete)
	assert.Equal(t, int64(4), resp.TransactionCount)
}
