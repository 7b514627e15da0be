package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"docflow/internal/model"
	"docflow/internal/repository"
	"docflow/internal/service"
)

// queryError is a client mistake in the query string.
type queryError struct {
	code    string
	message string
}

func (e *queryError) write(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, e.code, e.message)
}

// parseFilter reads category, locationId, status, q, from and to.
func parseFilter(c *fiber.Ctx) (service.ReportFilter, *queryError) {
	var f service.ReportFilter

	if v := c.Query("category"); v != "" {
		cat, ok := model.ParseCategory(v)
		if !ok {
			return f, &queryError{"INVALID_CATEGORY", "unknown category"}
		}
		f.Category = cat
	}
	if v := c.Query("status"); v != "" {
		st, ok := model.ParseStatus(v)
		if !ok {
			return f, &queryError{"INVALID_STATUS", "status must be active, expiring or expired"}
		}
		f.Status = st
	}
	f.LocationID = strings.Clone(c.Query("locationId"))
	f.Search = strings.Clone(c.Query("q"))

	var err error
	if v := c.Query("from"); v != "" {
		if f.IssuedFrom, err = model.ParseDate(v); err != nil {
			return f, &queryError{"INVALID_DATE", "from must be YYYY-MM-DD"}
		}
	}
	if v := c.Query("to"); v != "" {
		if f.IssuedTo, err = model.ParseDate(v); err != nil {
			return f, &queryError{"INVALID_DATE", "to must be YYYY-MM-DD"}
		}
	}
	return f, nil
}

// parsePage reads limit and offset, defaulting to 10 and 0.
func parsePage(c *fiber.Ctx) (repository.PageQuery, *queryError) {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 0 {
		return repository.PageQuery{}, &queryError{"INVALID_LIMIT", "invalid limit"}
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil || offset < 0 {
		return repository.PageQuery{}, &queryError{"INVALID_OFFSET", "invalid offset"}
	}
	return repository.PageQuery{Limit: limit, Offset: offset}, nil
}

func nowIn(t service.Tracker, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return t.Now().In(loc)
}
