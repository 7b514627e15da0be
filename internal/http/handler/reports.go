package handler

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"docflow/internal/export"
	"docflow/internal/model"
	"docflow/internal/service"
)

type reportResponse struct {
	GeneratedAt string                 `json:"generatedAt"`
	Total       int                    `json:"total"`
	Items       []service.DocumentView `json:"items"`
}

// Report godoc
// @Summary Compliance report
// @Description Every document matching the filter, unpaginated.
// @Tags reports
// @Produce json
// @Param category query string false "Category"
// @Param locationId query string false "Location id"
// @Param status query string false "active, expiring or expired"
// @Param q query string false "Search in title, code and description"
// @Param from query string false "Issued on or after (YYYY-MM-DD)"
// @Param to query string false "Issued on or before (YYYY-MM-DD)"
// @Success 200 {object} reportResponse
// @Failure 400 {object} errorPayload
// @Router /reports [get]
func Report(t service.Tracker, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, qerr := parseFilter(c)
		if qerr != nil {
			return qerr.write(c)
		}
		now := nowIn(t, loc)
		items := t.Report(f, now)
		return c.JSON(reportResponse{
			GeneratedAt: model.DateOf(now).String(),
			Total:       len(items),
			Items:       items,
		})
	}
}

// ExportReport godoc
// @Summary Compliance report as a spreadsheet
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param category query string false "Category"
// @Param locationId query string false "Location id"
// @Param status query string false "active, expiring or expired"
// @Param q query string false "Search in title, code and description"
// @Success 200 {file} file
// @Failure 400 {object} errorPayload
// @Router /reports/export [get]
func ExportReport(t service.Tracker, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, qerr := parseFilter(c)
		if qerr != nil {
			return qerr.write(c)
		}
		now := nowIn(t, loc)

		var buf bytes.Buffer
		if err := export.WriteXLSX(&buf, t.Report(f, now)); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		c.Set(fiber.HeaderContentType, export.ContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="relatorio-%s.xlsx"`, model.DateOf(now)))
		return c.Send(buf.Bytes())
	}
}

// GetStats godoc
// @Summary Dashboard counters
// @Tags reports
// @Produce json
// @Success 200 {object} service.Stats
// @Router /stats [get]
func GetStats(t service.Tracker, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(t.Stats(nowIn(t, loc)))
	}
}
