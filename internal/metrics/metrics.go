package metrics

import (
	"time"

	"brigade/internal/derive"
	"brigade/internal/models"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector handles prometheus metrics for the derivation pipeline.
type Collector struct {
	registry *prometheus.Registry
	metrics  map[string]prometheus.Collector
}

// NewCollector creates a new metrics collector with its own registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	deriveDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kitchen_derive_duration_seconds",
			Help:    "Time taken by one full derivation pass",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		},
	)

	inventoryValue := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "kitchen_inventory_value",
			Help: "Total value of raw ingredient stock",
		},
	)

	openShoppingItems := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "kitchen_open_shopping_items",
			Help: "Shopping items not yet completed",
		},
	)

	criticalIngredients := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "kitchen_critical_ingredients",
			Help: "Ingredients with zero stock",
		},
	)

	storageUtilization := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "kitchen_storage_utilization_percent",
			Help: "Mean storage location utilization",
		},
	)

	alertsBySeverity := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "kitchen_alerts",
			Help: "Active alerts by severity",
		},
		[]string{"severity"},
	)

	// Create metrics map
	metrics := map[string]prometheus.Collector{
		"derive_duration":      deriveDuration,
		"inventory_value":      inventoryValue,
		"open_shopping_items":  openShoppingItems,
		"critical_ingredients": criticalIngredients,
		"storage_utilization":  storageUtilization,
		"alerts":               alertsBySeverity,
	}

	// Register metrics
	for _, metric := range metrics {
		registry.MustRegister(metric)
	}

	return &Collector{
		registry: registry,
		metrics:  metrics,
	}
}

// Registry returns the collector's prometheus registry for the metrics
// server handler.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordDerive records the figures of one derivation pass.
func (c *Collector) RecordDerive(result derive.Result, duration time.Duration) {
	if histogram, ok := c.metrics["derive_duration"].(prometheus.Histogram); ok {
		histogram.Observe(duration.Seconds())
	}
	if gauge, ok := c.metrics["inventory_value"].(prometheus.Gauge); ok {
		gauge.Set(result.Stats.TotalInventoryValue)
	}
	if gauge, ok := c.metrics["open_shopping_items"].(prometheus.Gauge); ok {
		gauge.Set(float64(result.Stats.ShoppingItems))
	}
	if gauge, ok := c.metrics["critical_ingredients"].(prometheus.Gauge); ok {
		gauge.Set(float64(result.Stats.CriticalItems))
	}
	if gauge, ok := c.metrics["storage_utilization"].(prometheus.Gauge); ok {
		gauge.Set(result.Stats.StorageUtilization)
	}
	if gauges, ok := c.metrics["alerts"].(*prometheus.GaugeVec); ok {
		counts := map[models.AlertSeverity]int{}
		for _, alert := range result.Alerts {
			counts[alert.Severity]++
		}
		for _, severity := range []models.AlertSeverity{models.SeverityInfo, models.SeverityWarning, models.SeverityCritical} {
			gauges.WithLabelValues(string(severity)).Set(float64(counts[severity]))
		}
	}
}
