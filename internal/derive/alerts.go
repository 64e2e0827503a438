package derive

import (
	"fmt"
	"math"
	"time"

	"brigade/internal/models"
)

// AlertConfig holds the tunable thresholds of the alert engine. Zero values
// are replaced by the defaults below, so an empty config is usable.
type AlertConfig struct {
	LowStockThreshold    float64 `yaml:"low_stock_threshold"`
	ExpiryWarningDays    int     `yaml:"expiry_warning_days"`
	ExpiryCriticalDays   int     `yaml:"expiry_critical_days"`
	NoUpdateWarningDays  int     `yaml:"no_update_warning_days"`
	NoUpdateCriticalDays int     `yaml:"no_update_critical_days"`
	StorageWarningPct    float64 `yaml:"storage_warning_pct"`
	StorageCriticalPct   float64 `yaml:"storage_critical_pct"`
	WasteWarningPct      float64 `yaml:"waste_warning_pct"`
	MinEfficiencyPct     float64 `yaml:"min_efficiency_pct"`
	ProductExpiryDays    int     `yaml:"product_expiry_days"`
}

// DefaultAlertConfig returns the stock thresholds the dashboard ships with.
func DefaultAlertConfig() AlertConfig {
	return AlertConfig{
		LowStockThreshold:    2,
		ExpiryWarningDays:    7,
		ExpiryCriticalDays:   3,
		NoUpdateWarningDays:  7,
		NoUpdateCriticalDays: 14,
		StorageWarningPct:    85,
		StorageCriticalPct:   95,
		WasteWarningPct:      25,
		MinEfficiencyPct:     70,
		ProductExpiryDays:    7,
	}
}

func (c AlertConfig) withDefaults() AlertConfig {
	d := DefaultAlertConfig()
	if c.LowStockThreshold == 0 {
		c.LowStockThreshold = d.LowStockThreshold
	}
	if c.ExpiryWarningDays == 0 {
		c.ExpiryWarningDays = d.ExpiryWarningDays
	}
	if c.ExpiryCriticalDays == 0 {
		c.ExpiryCriticalDays = d.ExpiryCriticalDays
	}
	if c.NoUpdateWarningDays == 0 {
		c.NoUpdateWarningDays = d.NoUpdateWarningDays
	}
	if c.NoUpdateCriticalDays == 0 {
		c.NoUpdateCriticalDays = d.NoUpdateCriticalDays
	}
	if c.StorageWarningPct == 0 {
		c.StorageWarningPct = d.StorageWarningPct
	}
	if c.StorageCriticalPct == 0 {
		c.StorageCriticalPct = d.StorageCriticalPct
	}
	if c.WasteWarningPct == 0 {
		c.WasteWarningPct = d.WasteWarningPct
	}
	if c.MinEfficiencyPct == 0 {
		c.MinEfficiencyPct = d.MinEfficiencyPct
	}
	if c.ProductExpiryDays == 0 {
		c.ProductExpiryDays = d.ProductExpiryDays
	}
	return c
}

// BuildAlerts derives the flat alert list from the snapshot and the product
// analytics. Five independent rule families run in a fixed order: ingredient
// stock, ingredient staleness, ingredient expiry, storage capacity, and
// elaborated-product health. Within a family the more severe condition is
// checked first and suppresses the lesser one for the same resource; across
// families a resource may carry several alerts at once. Alert ids depend only
// on type and resource id, so an unchanged snapshot reproduces the list
// exactly.
func BuildAlerts(snap Snapshot, analytics map[string]models.ProductAnalytics, cfg AlertConfig, now time.Time) []models.Alert {
	cfg = cfg.withDefaults()
	alerts := make([]models.Alert, 0)

	chefNames := make(map[string]string, len(snap.Chefs))
	for _, chef := range snap.Chefs {
		chefNames[chef.ID] = chef.Name
	}

	// Stock levels.
	for _, ing := range snap.Ingredients {
		switch {
		case ing.CurrentStock <= 0:
			alerts = append(alerts, models.Alert{
				ID:           "stock-" + ing.ID,
				Type:         models.AlertStock,
				Severity:     models.SeverityCritical,
				Message:      fmt.Sprintf("%s is completely out of stock", ing.Name),
				ResourceID:   ing.ID,
				ResourceType: "ingredient",
				Action:       models.ActionReorderImmediate,
				Priority:     models.AlertPriorityImmediate,
				CreatedAt:    now,
				Metadata: map[string]any{
					"currentStock":    ing.CurrentStock,
					"minStock":        ing.MinStock,
					"estimatedPrice":  ing.EstimatedPrice,
					"responsibleChef": chefNames[ing.ResponsibleChefID],
				},
			})
		case ing.CurrentStock <= cfg.LowStockThreshold:
			alerts = append(alerts, models.Alert{
				ID:           "stock-" + ing.ID,
				Type:         models.AlertStock,
				Severity:     models.SeverityWarning,
				Message:      fmt.Sprintf("%s is critically low (%.4g %s)", ing.Name, ing.CurrentStock, ing.Unit),
				ResourceID:   ing.ID,
				ResourceType: "ingredient",
				Action:       models.ActionReorderSoon,
				Priority:     models.AlertPriorityHigh,
				CreatedAt:    now,
				Metadata: map[string]any{
					"currentStock":   ing.CurrentStock,
					"minStock":       ing.MinStock,
					"estimatedPrice": ing.EstimatedPrice,
				},
			})
		}
	}

	// Ingredients not restocked or verified recently.
	warningCutoff := now.AddDate(0, 0, -cfg.NoUpdateWarningDays)
	criticalCutoff := now.AddDate(0, 0, -cfg.NoUpdateCriticalDays)
	for _, ing := range snap.Ingredients {
		days := int(math.Floor(now.Sub(ing.LastRestocked).Hours() / 24))
		switch {
		case ing.LastRestocked.Before(criticalCutoff):
			alerts = append(alerts, models.Alert{
				ID:           "no-update-" + ing.ID,
				Type:         models.AlertNoUpdate,
				Severity:     models.SeverityCritical,
				Message:      fmt.Sprintf("%s has not been updated in %d days", ing.Name, days),
				ResourceID:   ing.ID,
				ResourceType: "ingredient",
				Action:       models.ActionVerifyStock,
				Priority:     models.AlertPriorityHigh,
				CreatedAt:    now,
				Metadata: map[string]any{
					"daysSinceUpdate": days,
					"lastRestocked":   ing.LastRestocked,
					"responsibleChef": chefNames[ing.ResponsibleChefID],
				},
			})
		case ing.LastRestocked.Before(warningCutoff):
			alerts = append(alerts, models.Alert{
				ID:           "no-update-" + ing.ID,
				Type:         models.AlertNoUpdate,
				Severity:     models.SeverityWarning,
				Message:      fmt.Sprintf("%s needs its weekly stock check", ing.Name),
				ResourceID:   ing.ID,
				ResourceType: "ingredient",
				Action:       models.ActionCheckStock,
				Priority:     models.AlertPriorityMedium,
				CreatedAt:    now,
				Metadata: map[string]any{
					"daysSinceUpdate": days,
					"lastRestocked":   ing.LastRestocked,
				},
			})
		}
	}

	// Ingredient expiry.
	for _, ing := range snap.Ingredients {
		if ing.ExpiryDate == nil {
			continue
		}
		daysUntil := int(math.Ceil(ing.ExpiryDate.Sub(now).Hours() / 24))
		switch {
		case daysUntil <= 0:
			alerts = append(alerts, models.Alert{
				ID:           "expiry-" + ing.ID,
				Type:         models.AlertExpiry,
				Severity:     models.SeverityCritical,
				Message:      fmt.Sprintf("%s has expired", ing.Name),
				ResourceID:   ing.ID,
				ResourceType: "ingredient",
				Action:       models.ActionDiscardImmediate,
				Priority:     models.AlertPriorityImmediate,
				CreatedAt:    now,
				Metadata: map[string]any{
					"expiryDate":  *ing.ExpiryDate,
					"daysOverdue": -daysUntil,
				},
			})
		case daysUntil <= cfg.ExpiryCriticalDays:
			alerts = append(alerts, models.Alert{
				ID:           "expiry-" + ing.ID,
				Type:         models.AlertExpiry,
				Severity:     models.SeverityCritical,
				Message:      fmt.Sprintf("%s expires in %d days", ing.Name, daysUntil),
				ResourceID:   ing.ID,
				ResourceType: "ingredient",
				Action:       models.ActionUseImmediately,
				Priority:     models.AlertPriorityHigh,
				CreatedAt:    now,
				Metadata: map[string]any{
					"expiryDate":      *ing.ExpiryDate,
					"daysUntilExpiry": daysUntil,
				},
			})
		case daysUntil <= cfg.ExpiryWarningDays:
			alerts = append(alerts, models.Alert{
				ID:           "expiry-" + ing.ID,
				Type:         models.AlertExpiry,
				Severity:     models.SeverityWarning,
				Message:      fmt.Sprintf("%s expires in %d days", ing.Name, daysUntil),
				ResourceID:   ing.ID,
				ResourceType: "ingredient",
				Action:       models.ActionPlanUsage,
				Priority:     models.AlertPriorityMedium,
				CreatedAt:    now,
				Metadata: map[string]any{
					"expiryDate":      *ing.ExpiryDate,
					"daysUntilExpiry": daysUntil,
				},
			})
		}
	}

	// Storage capacity.
	for _, loc := range snap.Locations {
		utilization := loc.Utilization()
		switch {
		case utilization >= cfg.StorageCriticalPct:
			alerts = append(alerts, models.Alert{
				ID:           "storage-" + loc.ID,
				Type:         models.AlertStorage,
				Severity:     models.SeverityCritical,
				Message:      fmt.Sprintf("%s is at %.1f%% of capacity", loc.Name, utilization),
				ResourceID:   loc.ID,
				ResourceType: "storage",
				Action:       models.ActionReorganizeImmediate,
				Priority:     models.AlertPriorityHigh,
				CreatedAt:    now,
				Metadata: map[string]any{
					"currentUsage": loc.CurrentUsage,
					"capacity":     loc.Capacity,
					"utilization":  utilization,
				},
			})
		case utilization >= cfg.StorageWarningPct:
			alerts = append(alerts, models.Alert{
				ID:           "storage-" + loc.ID,
				Type:         models.AlertStorage,
				Severity:     models.SeverityWarning,
				Message:      fmt.Sprintf("%s is at %.1f%% of capacity", loc.Name, utilization),
				ResourceID:   loc.ID,
				ResourceType: "storage",
				Action:       models.ActionPlanReorganization,
				Priority:     models.AlertPriorityMedium,
				CreatedAt:    now,
				Metadata: map[string]any{
					"currentUsage": loc.CurrentUsage,
					"capacity":     loc.Capacity,
					"utilization":  utilization,
				},
			})
		}
	}

	// Elaborated-product health: batch expiry, lifecycle efficiency, waste.
	expiryWindow := now.AddDate(0, 0, cfg.ProductExpiryDays)
	for _, p := range snap.Products {
		a := analytics[p.ID]

		if expiring, batch := oldestActiveBatch(snap, p, expiryWindow); expiring {
			alerts = append(alerts, models.Alert{
				ID:           "expiry-" + p.ID,
				Type:         models.AlertExpiry,
				Severity:     models.SeverityCritical,
				Message:      fmt.Sprintf("%s has a batch expiring soon (%s)", p.Name, batch.BatchNumber),
				ResourceID:   p.ID,
				ResourceType: "product",
				Action:       models.ActionUseImmediately,
				Priority:     models.AlertPriorityHigh,
				CreatedAt:    now,
				Metadata: map[string]any{
					"batchId":    batch.ID,
					"expiryDate": batch.ExpiryDate,
				},
			})
		}

		if a.Efficiency < cfg.MinEfficiencyPct {
			alerts = append(alerts, models.Alert{
				ID:           "lifecycle-" + p.ID,
				Type:         models.AlertLifecycle,
				Severity:     models.SeverityWarning,
				Message:      fmt.Sprintf("%s runs at %.1f%% lifecycle efficiency", p.Name, a.Efficiency),
				ResourceID:   p.ID,
				ResourceType: "product",
				Action:       models.ActionCheckStock,
				Priority:     models.AlertPriorityMedium,
				CreatedAt:    now,
				Metadata: map[string]any{
					"efficiency": a.Efficiency,
				},
			})
		}

		if a.WastePercentage > cfg.WasteWarningPct {
			alerts = append(alerts, models.Alert{
				ID:           "mermas-" + p.ID,
				Type:         models.AlertMermas,
				Severity:     models.SeverityWarning,
				Message:      fmt.Sprintf("%s wastes %.1f%% of its production", p.Name, a.WastePercentage),
				ResourceID:   p.ID,
				ResourceType: "product",
				Action:       models.ActionPlanUsage,
				Priority:     models.AlertPriorityMedium,
				CreatedAt:    now,
				Metadata: map[string]any{
					"wastePercentage": a.WastePercentage,
				},
			})
		}
	}

	return alerts
}

// oldestActiveBatch reports whether the product's oldest not-fully-consumed
// batch expires before the given deadline. Products with no stock or no
// active batches never trigger.
func oldestActiveBatch(snap Snapshot, p models.ElaboratedProduct, deadline time.Time) (bool, models.ProductionBatch) {
	if p.CurrentStock == 0 {
		return false, models.ProductionBatch{}
	}

	consumedByBatch := make(map[string]float64)
	for _, c := range snap.Consumptions {
		consumedByBatch[c.BatchID] += c.Quantity
	}

	var oldest models.ProductionBatch
	found := false
	for _, b := range snap.Batches {
		if b.ProductID != p.ID || consumedByBatch[b.ID] >= b.Quantity {
			continue
		}
		if !found || b.ExpiryDate.Before(oldest.ExpiryDate) {
			oldest = b
			found = true
		}
	}
	if !found || oldest.ExpiryDate.After(deadline) {
		return false, models.ProductionBatch{}
	}
	return true, oldest
}
