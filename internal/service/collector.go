package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"docflow/internal/model"
)

// StatusCollector exports document counts by derived status. Status is
// recomputed on every scrape.
type StatusCollector struct {
	store     *Store
	documents *prometheus.Desc
	locations *prometheus.Desc
}

// NewStatusCollector returns a collector over store.
func NewStatusCollector(store *Store) *StatusCollector {
	return &StatusCollector{
		store: store,
		documents: prometheus.NewDesc(
			"docflow_documents",
			"Number of documents by derived status.",
			[]string{"status"}, nil,
		),
		locations: prometheus.NewDesc(
			"docflow_locations",
			"Number of registered locations.",
			nil, nil,
		),
	}
}

func (c *StatusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.documents
	ch <- c.locations
}

func (c *StatusCollector) Collect(ch chan<- prometheus.Metric) {
	st := c.store.Stats(c.store.Now())
	counts := map[model.Status]int{
		model.StatusActive:   st.Active,
		model.StatusExpiring: st.Expiring,
		model.StatusExpired:  st.Expired,
	}
	for _, status := range model.Statuses() {
		ch <- prometheus.MustNewConstMetric(c.documents, prometheus.GaugeValue, float64(counts[status]), status.Key())
	}
	ch <- prometheus.MustNewConstMetric(c.locations, prometheus.GaugeValue, float64(len(c.store.Locations())))
}
