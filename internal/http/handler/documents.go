package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	"docflow/internal/model"
	"docflow/internal/repository"
	"docflow/internal/service"
)

// documentRequest is the writable part of a document. The id comes from the
// path (update) or is generated (create); createdAt is owned by the store.
type documentRequest struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Category     model.Category `json:"category"`
	LocationID   string         `json:"locationId"`
	IssueDate    model.Date     `json:"issueDate"`
	ExpiryDate   *model.Date    `json:"expiryDate"`
	Responsible  string         `json:"responsible"`
	Code         string         `json:"code"`
	Observations string         `json:"observations"`
	FileName     string         `json:"fileName"`
}

func (r documentRequest) document(id string) model.Document {
	return model.Document{
		ID:           id,
		Title:        r.Title,
		Description:  r.Description,
		Category:     r.Category,
		LocationID:   r.LocationID,
		IssueDate:    r.IssueDate,
		ExpiryDate:   r.ExpiryDate,
		Responsible:  r.Responsible,
		Code:         r.Code,
		Observations: r.Observations,
		FileName:     r.FileName,
	}
}

// ListDocuments godoc
// @Summary List documents
// @Description Filtered, paginated documents with derived status.
// @Tags documents
// @Produce json
// @Param category query string false "Category"
// @Param locationId query string false "Location id"
// @Param status query string false "active, expiring or expired"
// @Param q query string false "Search in title, code and description"
// @Param from query string false "Issued on or after (YYYY-MM-DD)"
// @Param to query string false "Issued on or before (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} repository.PageResult[service.DocumentView]
// @Failure 400 {object} errorPayload
// @Router /documents [get]
func ListDocuments(t service.Tracker, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pq, qerr := parsePage(c)
		if qerr != nil {
			return qerr.write(c)
		}
		f, qerr := parseFilter(c)
		if qerr != nil {
			return qerr.write(c)
		}
		return c.JSON(repository.Paginate(t.Report(f, nowIn(t, loc)), pq))
	}
}

// GetDocument godoc
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param id path string true "Document id"
// @Success 200 {object} service.DocumentView
// @Failure 404 {object} errorPayload
// @Router /documents/{id} [get]
func GetDocument(t service.Tracker, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, ok := t.Document(c.Params("id"))
		if !ok {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
		}
		return c.JSON(t.View(doc, nowIn(t, loc)))
	}
}

// CreateDocument godoc
// @Summary Create a document
// @Tags documents
// @Accept json
// @Produce json
// @Param document body documentRequest true "Document"
// @Success 201 {object} service.DocumentView
// @Failure 400 {object} errorPayload
// @Router /documents [post]
func CreateDocument(t service.Tracker, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req documentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		doc, err := t.AddDocument(c.UserContext(), req.document(uuid.NewString()))
		if err != nil {
			return writeStoreError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(t.View(doc, nowIn(t, loc)))
	}
}

// UpdateDocument godoc
// @Summary Replace a document
// @Description Unknown ids answer 204 unless the store runs in strict mode.
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document id"
// @Param document body documentRequest true "Document"
// @Success 200 {object} service.DocumentView
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /documents/{id} [put]
func UpdateDocument(t service.Tracker, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req documentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		doc, err := t.UpdateDocument(c.UserContext(), req.document(utils.CopyString(c.Params("id"))))
		if err != nil {
			return writeStoreError(c, err)
		}
		if doc.ID == "" {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.JSON(t.View(doc, nowIn(t, loc)))
	}
}

// DeleteDocument godoc
// @Summary Delete a document
// @Tags documents
// @Param id path string true "Document id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /documents/{id} [delete]
func DeleteDocument(t service.Tracker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := t.DeleteDocument(c.UserContext(), utils.CopyString(c.Params("id"))); err != nil {
			return writeStoreError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
