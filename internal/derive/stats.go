package derive

import (
	"time"

	"brigade/internal/models"
)

// BuildStats folds the raw collections and every upstream derivation into the
// single summary object the dashboard renders. It holds no state of its own
// and is rebuilt on every recompute.
func BuildStats(snap Snapshot, shopping []models.ShoppingItem, weeklyBudget float64,
	analytics map[string]models.ProductAnalytics, chefPerf []models.ChefPerformance,
	storageEff []models.StorageEfficiency, now time.Time) models.KitchenStats {

	stats := models.KitchenStats{
		WeeklyBudget:      weeklyBudget,
		ActiveChefs:       len(snap.Chefs),
		ChefPerformance:   chefPerf,
		StorageEfficiency: storageEff,
	}

	for _, ing := range snap.Ingredients {
		switch Classify(ing.CurrentStock, ing.MinStock) {
		case StockCritical:
			stats.CriticalItems++
		case StockLow:
			stats.LowStockItems++
		}
		stats.TotalInventoryValue += ing.CurrentStock * ing.EstimatedPrice
	}

	for _, item := range shopping {
		if item.Completed {
			stats.WeeklySpent += item.EstimatedCost
		} else {
			stats.ShoppingItems++
		}
	}

	expiryWindow := now.AddDate(0, 0, 7)
	for _, ing := range snap.Ingredients {
		if ing.ExpiryDate != nil && ing.ExpiryDate.Before(expiryWindow) {
			stats.ExpiringItems++
		}
	}
	for _, p := range snap.Products {
		if expiring, _ := oldestActiveBatch(snap, p, expiryWindow); expiring {
			stats.ExpiringItems++
		}
	}

	if len(snap.Locations) > 0 {
		var sum float64
		for _, loc := range snap.Locations {
			sum += loc.Utilization()
		}
		stats.StorageUtilization = sum / float64(len(snap.Locations))
	}

	stats.TotalElaboratedProducts = len(snap.Products)
	var produced, wasted, qualitySum float64
	for _, p := range snap.Products {
		if p.IsActive {
			stats.ActiveElaboratedProducts++
		}
		stats.TotalProductionValue += p.CurrentStock * p.CostPrice
		qualitySum += p.QualityScore

		a := analytics[p.ID]
		produced += a.TotalProduced
		wasted += a.TotalWasted
	}
	if len(snap.Products) > 0 {
		stats.AverageQualityScore = qualitySum / float64(len(snap.Products))
	}
	stats.TotalWastePercentage, stats.AverageEfficiency = wasteAndEfficiency(produced, wasted)

	return stats
}
