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

func newAuthHandlerFixture() (*AuthHandler, *testutil.MockUserRepository, *testutil.MockCategoryRepository) {
	users := testutil.NewMockUserRepository()
	categories := testutil.NewMockCategoryRepository()
	return NewAuthHandler(service.NewAuthService(users, categories)), users, categories
}

func TestCallback_NewUser(t *testing.T) {
	h, _, categories := newAuthHandlerFixture()

	c, rec := newRequestContext(echo.New(), http.MethodPost, "/api/v1/auth/callback", "", uuid.Nil)
	setupAuthContext(c, "auth0|newuser123", "new@example.com", "New User")

	require.NoError(t, h.Callback(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var result service.AuthResult
	resp := decodeData(t, rec, &result)
	assert.Equal(t, "Account created.", resp.Message)
	assert.True(t, result.IsNewUser)
	assert.Equal(t, "new@example.com", result.User.Email)

	groups, err := service.NewCategoryService(categories).List(c.Request().Context(), result.User.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, groups.Expense, "default categories are seeded")
}

func TestCallback_ExistingUser(t *testing.T) {
	h, users, _ := newAuthHandlerFixture()
	existing := testutil.FakeUser()
	users.AddUser(existing)

	c, rec := newRequestContext(echo.New(), http.MethodPost, "/api/v1/auth/callback", "", existing.ID)
	setupAuthContext(c, existing.Auth0ID, existing.Email, "")

	require.NoError(t, h.Callback(c))

	var result service.AuthResult
	resp := decodeData(t, rec, &result)
	assert.Equal(t, "Sign in successful!", resp.Message)
	assert.False(t, result.IsNewUser)
	assert.Equal(t, existing.ID, result.User.ID)
}

func TestCallback_MissingEmail(t *testing.T) {
	h, _, _ := newAuthHandlerFixture()

	c, rec := newRequestContext(echo.New(), http.MethodPost, "/api/v1/auth/callback", "", uuid.Nil)
	setupAuthContext(c, "auth0|noemail", "", "")

	require.NoError(t, h.Callback(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCallback_NoAuth0ID(t *testing.T) {
	h, _, _ := newAuthHandlerFixture()

	c, rec := newRequestContext(echo.New(), http.MethodPost, "/api/v1/auth/callback", "", uuid.Nil)
	require.NoError(t, h.Callback(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe(t *testing.T) {
	h, users, _ := newAuthHandlerFixture()
	existing := testutil.FakeUser()
	users.AddUser(existing)

	c, rec := newRequestContext(echo.New(), http.MethodGet, "/api/v1/auth/me", "", existing.ID)
	require.NoError(t, h.Me(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var user domain.User
	decodeData(t, rec, &user)
	assert.Equal(t, existing.Email, user.Email)
}

func TestMe_WithoutOwner(t *testing.T) {
	h, _, _ := newAuthHandlerFixture()

	c, rec := newRequestContext(echo.New(), http.MethodGet, "/api/v1/auth/me", "", uuid.Nil)
	require.NoError(t, h.Me(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout(t *testing.T) {
	h, _, _ := newAuthHandlerFixture()

	c, rec := newRequestContext(echo.New(), http.MethodPost, "/api/v1/auth/logout", "", uuid.Nil)
	setupAuthContext(c, "auth0|user", "user@example.com", "")
	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sign out successful!", decodeResponse(t, rec).Message)
}
