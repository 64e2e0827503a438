package monitoring

import (
	"sync"
	"time"

	"brigade/internal/derive"
)

// Monitor collects runtime figures about the derivation pipeline for the
// dashboard's JSON metrics endpoint.
type Monitor struct {
	metrics      map[string]interface{}
	metricsMutex sync.RWMutex
	startTime    time.Time
	recomputes   int64
}

// NewMonitor creates a new monitoring instance
func NewMonitor() *Monitor {
	return &Monitor{
		metrics:   make(map[string]interface{}),
		startTime: time.Now(),
	}
}

// RecordMetric records a metric value
func (m *Monitor) RecordMetric(name string, value interface{}) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics[name] = value
}

// RecordRecompute records the outcome of one derivation pass.
func (m *Monitor) RecordRecompute(result derive.Result, duration time.Duration) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()

	m.recomputes++
	m.metrics["recompute_count"] = m.recomputes
	m.metrics["recompute_duration_ms"] = float64(duration.Microseconds()) / 1000
	m.metrics["shopping_items"] = len(result.ShoppingList)
	m.metrics["open_shopping_items"] = result.Stats.ShoppingItems
	m.metrics["alerts"] = len(result.Alerts)
	m.metrics["critical_items"] = result.Stats.CriticalItems
	m.metrics["inventory_value"] = result.Stats.TotalInventoryValue
	m.metrics["last_recompute"] = time.Now().Format(time.RFC3339)
}

// GetMetric returns a specific metric value
func (m *Monitor) GetMetric(name string) (interface{}, bool) {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()
	value, exists := m.metrics[name]
	return value, exists
}

// GetMetrics returns all current metrics
func (m *Monitor) GetMetrics() map[string]interface{} {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()

	// Create a copy to avoid concurrent map access
	metrics := make(map[string]interface{}, len(m.metrics))
	for k, v := range m.metrics {
		metrics[k] = v
	}

	// Add system metrics
	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()

	return metrics
}

// Reset clears all metrics
func (m *Monitor) Reset() {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics = make(map[string]interface{})
	m.recomputes = 0
}
