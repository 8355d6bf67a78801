package metrics

import (
	"context"
	"sync"
	"time"

	"clientmap-api/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// StatsSource provides record counters for the store gauges.
type StatsSource interface {
	Stats(ctx context.Context) (*models.Stats, error)
}

const scrapeTimeout = 2 * time.Second

var registerStoreOnce sync.Once

// RegisterStoreGauges exposes record counts read from src on every scrape.
// Only the first call registers.
func RegisterStoreGauges(src StatsSource) {
	registerStoreOnce.Do(func() {
		prometheus.MustRegister(newStoreCollector(src))
	})
}

type storeCollector struct {
	src      StatsSource
	total    *prometheus.Desc
	active   *prometheus.Desc
	voided   *prometheus.Desc
	mappable *prometheus.Desc
	up       *prometheus.Desc
}

func newStoreCollector(src StatsSource) *storeCollector {
	return &storeCollector{
		src:      src,
		total:    prometheus.NewDesc(namespace+"_clients", "Stored client records", nil, nil),
		active:   prometheus.NewDesc(namespace+"_clients_active", "Stored client records not voided", nil, nil),
		voided:   prometheus.NewDesc(namespace+"_clients_voided", "Stored client records flagged as voided", nil, nil),
		mappable: prometheus.NewDesc(namespace+"_clients_mappable", "Stored client records with usable coordinates", nil, nil),
		up:       prometheus.NewDesc(namespace+"_store_up", "Whether the last store scrape succeeded", nil, nil),
	}
}

func (c *storeCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.total
	ch <- c.active
	ch <- c.voided
	ch <- c.mappable
	ch <- c.up
}

func (c *storeCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), scrapeTimeout)
	defer cancel()

	stats, err := c.src.Stats(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("metrics: failed to read store stats")
		ch <- prometheus.MustNewConstMetric(c.up, prometheus.GaugeValue, 0)
		return
	}

	ch <- prometheus.MustNewConstMetric(c.up, prometheus.GaugeValue, 1)
	ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, float64(stats.Total))
	ch <- prometheus.MustNewConstMetric(c.active, prometheus.GaugeValue, float64(stats.Active))
	ch <- prometheus.MustNewConstMetric(c.voided, prometheus.GaugeValue, float64(stats.Voided))
	ch <- prometheus.MustNewConstMetric(c.mappable, prometheus.GaugeValue, float64(stats.Mappable))
}
