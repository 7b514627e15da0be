package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"docflow/internal/service"
	"docflow/internal/suggest"
)

// Deps are the collaborators the routes need.
type Deps struct {
	Tracker   service.Tracker
	Suggester suggest.Suggester
	// Health is pinged by /health; usually the snapshot backend.
	Health Pinger
	// Gatherer is served on /metrics when non-nil.
	Gatherer prometheus.Gatherer
	// Location is the time zone that decides "today" for derived status.
	Location *time.Location
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	if d.Suggester == nil {
		d.Suggester = suggest.Noop{}
	}

	app.Get("/health", HealthCheck(d.Health))
	app.Get("/healthz", LivenessProbe())
	if d.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	app.Get("/locations", ListLocations(d.Tracker))
	app.Post("/locations", CreateLocation(d.Tracker))
	app.Put("/locations/:id", UpdateLocation(d.Tracker))
	app.Delete("/locations/:id", DeleteLocation(d.Tracker))

	app.Get("/documents", ListDocuments(d.Tracker, d.Location))
	app.Post("/documents", CreateDocument(d.Tracker, d.Location))
	app.Get("/documents/:id", GetDocument(d.Tracker, d.Location))
	app.Put("/documents/:id", UpdateDocument(d.Tracker, d.Location))
	app.Delete("/documents/:id", DeleteDocument(d.Tracker))

	app.Get("/reports", Report(d.Tracker, d.Location))
	app.Get("/reports/export", ExportReport(d.Tracker, d.Location))
	app.Get("/stats", GetStats(d.Tracker, d.Location))

	app.Post("/suggestions/category", SuggestCategory(d.Suggester))
}
