package handler

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
)

// parseIDParam reads the :id path parameter
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "Invalid ID")
	}
	return id, nil
}

// queryInt reads an integer query parameter, returning def when it is absent
func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "Invalid "+name)
	}
	return v, nil
}

// queryDate reads an optional YYYY-MM-DD query parameter
func queryDate(c echo.Context, name string) (*domain.Date, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, "Must be in YYYY-MM-DD format")
	}
	return &d, nil
}

// localClock returns a clock reading the current time in loc
func localClock(loc *time.Location) func() time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return func() time.Time { return time.Now().In(loc) }
}
