package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ledgerly/ledgerly-backend/internal/middleware"
)

// fixedNow is the clock every handler test runs against
var fixedNow = time.Date(2026, time.October, 18, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// newRequestContext builds an echo context for method and target. A JSON
// body is sent when body is non-empty; ownerID is placed in the request
// context unless it is uuid.Nil.
func newRequestContext(e *echo.Echo, method, target, body string, ownerID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if ownerID != uuid.Nil {
		req = req.WithContext(middleware.WithOwnerID(req.Context(), ownerID))
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// withIDParam sets the :id path parameter
func withIDParam(c echo.Context, id string) {
	c.SetParamNames("id")
	c.SetParamValues(id)
}

// setupAuthContext places validated claims for auth0ID in the request context
func setupAuthContext(c echo.Context, auth0ID, email, name string) {
	claims := &validator.ValidatedClaims{
		RegisteredClaims: validator.RegisteredClaims{Subject: auth0ID},
		CustomClaims:     &middleware.CustomClaims{Email: email, Name: name},
	}
	ctx := context.WithValue(c.Request().Context(), middleware.ClaimsKey, claims)
	ctx = context.WithValue(ctx, middleware.Auth0IDKey, auth0ID)
	c.SetRequest(c.Request().WithContext(ctx))
}

// decodeResponse decodes the uniform envelope, leaving data as raw JSON
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) rawResponse {
	t.Helper()
	var resp rawResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response %q: %v", rec.Body.String(), err)
	}
	return resp
}

type rawResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// decodeData decodes the envelope's data into out
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) rawResponse {
	t.Helper()
	resp := decodeResponse(t, rec)
	if err := json.Unmarshal(resp.Data, out); err != nil {
		t.Fatalf("Failed to unmarshal data %s: %v", resp.Data, err)
	}
	return resp
}

// decodeJSON decodes a plain JSON body into out
func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("Failed to unmarshal body %q: %v", rec.Body.String(), err)
	}
}
