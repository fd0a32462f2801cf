package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/ledgerly/ledgerly-backend/internal/service"
	"github.com/ledgerly/ledgerly-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryHandlerFixture() (*CategoryHandler, *testutil.MockCategoryRepository) {
	repo := testutil.NewMockCategoryRepository()
	return NewCategoryHandler(service.NewCategoryService(repo)), repo
}

func TestGetCategories_GroupedByType(t *testing.T) {
	h, repo := newCategoryHandlerFixture()
	owner := uuid.New()
	repo.AddCategory(testutil.FakeCategory(owner, "Food", "#f97316"))
	repo.AddCategory(&domain.Category{OwnerID: owner, Name: "Salary", Color: "#22c55e", Type: domain.CategoryTypeIncome})

	c, rec := newRequestContext(echo.New(), http.MethodGet, "/api/v1/categories", "", owner)
	require.NoError(t, h.GetCategories(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var groups domain.CategoryGroups
	decodeData(t, rec, &groups)
	require.Len(t, groups.Expense, 1)
	require.Len(t, groups.Income, 1)
	assert.Equal(t, "Food", groups.Expense[0].Name)
	assert.Equal(t, "Salary", groups.Income[0].Name)
}

func TestGetCategories_Unauthorized(t *testing.T) {
	h, _ := newCategoryHandlerFixture()

	c, rec := newRequestContext(echo.New(), http.MethodGet, "/api/v1/categories", "", uuid.Nil)
	require.NoError(t, h.GetCategories(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", decodeResponse(t, rec).Message)
}

func TestCreateCategory(t *testing.T) {
	h, _ := newCategoryHandlerFixture()
	owner := uuid.New()

	body := `{"name":"Coffee","icon":"☕","color":"#a16207","type":"expense"}`
	c, rec := newRequestContext(echo.New(), http.MethodPost, "/api/v1/categories", body, owner)
	require.NoError(t, h.CreateCategory(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var category domain.Category
	resp := decodeData(t, rec, &category)
	assert.Equal(t, `"Coffee" category created.`, resp.Message)
	assert.Equal(t, owner, category.OwnerID)
}

func TestCreateCategory_Duplicate(t *testing.T) {
	h, repo := newCategoryHandlerFixture()
	owner := uuid.New()
	repo.AddCategory(testutil.FakeCategory(owner, "Coffee", "#a16207"))

	body := `{"name":"Coffee","icon":"☕","color":"#a16207","type":"expense"}`
	c, rec := newRequestContext(echo.New(), http.MethodPost, "/api/v1/categories", body, owner)
	require.NoError(t, h.CreateCategory(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, `A expense category named "Coffee" already exists.`, decodeResponse(t, rec).Message)
}

func TestCreateCategory_Validation(t *testing.T) {
	h, _ := newCategoryHandlerFixture()

	body := `{"name":"","icon":"☕","color":"#a16207","type":"expense"}`
	c, rec := newRequestContext(echo.New(), http.MethodPost, "/api/v1/categories", body, uuid.New())
	require.NoError(t, h.CreateCategory(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var field ValidationErrorData
	resp := decodeData(t, rec, &field)
	assert.Equal(t, "Name is required", resp.Message)
	assert.Equal(t, "name", field.Field)
}

func TestUpdateCategory_InvalidID(t *testing.T) {
	h, _ := newCategoryHandlerFixture()

	c, rec := newRequestContext(echo.New(), http.MethodPut, "/api/v1/categories/abc", `{}`, uuid.New())
	withIDParam(c, "abc")
	require.NoError(t, h.UpdateCategory(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCategory_BlockedByTransactions(t *testing.T) {
	h, repo := newCategoryHandlerFixture()
	owner := uuid.New()
	category := testutil.FakeCategory(owner, "Food", "#f97316")
	repo.AddCategory(category)
	repo.ActiveTransactionCounts[category.ID] = 3

	c, rec := newRequestContext(echo.New(), http.MethodDelete, "/api/v1/categories/"+category.ID.String(), "", owner)
	withIDParam(c, category.ID.String())
	require.NoError(t, h.DeleteCategory(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	var ref ReferenceErrorData
	resp := decodeData(t, rec, &ref)
	assert.Equal(t, "This category has 3 transactions. Reassign or delete them first.", resp.Message)
	assert.Equal(t, int64(3), ref.Count)
}

func TestDeleteCategory_Success(t *testing.T) {
	h, repo := newCategoryHandlerFixture()
	owner := uuid.New()
	category := testutil.FakeCategory(owner, "Food", "#f97316")
	repo.AddCategory(category)

	c, rec := newRequestContext(echo.New(), http.MethodDelete, "/api/v1/categories/"+category.ID.String(), "", owner)
	withIDParam(c, category.ID.String())
	require.NoError(t, h.DeleteCategory(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Category deleted.", decodeResponse(t, rec).Message)
	assert.NotContains(t, repo.Categories, category.ID)
}

func TestCanDeleteCategory(t *testing.T) {
	h, repo := newCategoryHandlerFixture()
	owner := uuid.New()
	category := testutil.FakeCategory(owner, "Food", "#f97316")
	repo.AddCategory(category)
	repo.ActiveTransactionCounts[category.ID] = 1

	c, rec := newRequestContext(echo.New(), http.MethodGet, "/", "", owner)
	withIDParam(c, category.ID.String())
	require.NoError(t, h.CanDeleteCategory(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var result service.CanDeleteResponse
	decodeData(t, rec, &result)
	assert.False(t, result.CanDelete)
	assert.Equal(t, int64(1), result.TransactionCount)
}

func TestCanDeleteCategory_OtherOwner(t *testing.T) {
	h, repo := newCategoryHandlerFixture()
	category := testutil.FakeCategory(uuid.New(), "Food", "#f97316")
	repo.AddCategory(category)

	c, rec := newRequestContext(echo.New(), http.MethodGet, "/", "", uuid.New())
	withIDParam(c, category.ID.String())
	require.NoError(t, h.CanDeleteCategory(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Category not found", decodeResponse(t, rec).Message)
}
