package derive

import (
	"sort"
	"time"

	"brigade/internal/models"
)

// BuildProductAnalytics derives lifetime production, waste, and revenue
// figures for every elaborated product, keyed by product id. All ratios guard
// against zero production: waste defaults to 0 and efficiency to 100 when
// nothing has been produced.
func BuildProductAnalytics(snap Snapshot) map[string]models.ProductAnalytics {
	analytics := make(map[string]models.ProductAnalytics, len(snap.Products))

	for _, p := range snap.Products {
		a := models.ProductAnalytics{
			ProductID:      p.ID,
			AverageQuality: p.QualityScore,
			CustomerRating: p.CustomerRating,
		}

		for _, b := range snap.Batches {
			if b.ProductID == p.ID {
				a.TotalProduced += b.Quantity
			}
		}
		for _, c := range snap.Consumptions {
			if c.ProductID != p.ID {
				continue
			}
			a.TotalConsumed += c.Quantity
			switch c.CustomerType {
			case models.ConsumerWaste:
				a.TotalWasted += c.Quantity
			case models.ConsumerExternal:
				a.TotalRevenue += c.Revenue
				a.TotalProfit += c.Profit
			}
		}

		a.WastePercentage, a.Efficiency = wasteAndEfficiency(a.TotalProduced, a.TotalWasted)
		analytics[p.ID] = a
	}
	return analytics
}

// BuildChefPerformance aggregates product analytics across every product a
// chef is responsible for, one entry per chef in collection order.
func BuildChefPerformance(snap Snapshot, analytics map[string]models.ProductAnalytics, now time.Time) []models.ChefPerformance {
	perf := make([]models.ChefPerformance, 0, len(snap.Chefs))

	for _, chef := range snap.Chefs {
		p := models.ChefPerformance{
			ChefID:     chef.ID,
			ChefName:   chef.Name,
			LastUpdate: now,
		}

		var produced, wasted, qualitySum float64
		for _, product := range snap.Products {
			if product.ResponsibleChefID != chef.ID {
				continue
			}
			p.TotalProducts++
			qualitySum += product.QualityScore

			a := analytics[product.ID]
			produced += a.TotalProduced
			wasted += a.TotalWasted
			p.TotalRevenue += a.TotalRevenue
		}

		if p.TotalProducts > 0 {
			p.AverageQuality = qualitySum / float64(p.TotalProducts)
		}
		p.WastePercentage, p.Efficiency = wasteAndEfficiency(produced, wasted)
		perf = append(perf, p)
	}
	return perf
}

// BuildStorageEfficiency groups elaborated products by storage location id
// and computes the location's inventory value, average cost per unit, and
// turnover rate. Entries are ordered by location id; names resolve through
// the location collection and fall back to "Unknown" for dangling references.
func BuildStorageEfficiency(snap Snapshot) []models.StorageEfficiency {
	names := make(map[string]string, len(snap.Locations))
	utilization := make(map[string]float64, len(snap.Locations))
	for _, loc := range snap.Locations {
		names[loc.ID] = loc.Name
		utilization[loc.ID] = loc.Utilization()
	}

	groups := make(map[string][]models.ElaboratedProduct)
	for _, p := range snap.Products {
		groups[p.StorageLocationID] = append(groups[p.StorageLocationID], p)
	}

	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	eff := make([]models.StorageEfficiency, 0, len(ids))
	for _, id := range ids {
		products := groups[id]

		var totalValue, totalStock float64
		inGroup := make(map[string]bool, len(products))
		for _, p := range products {
			totalValue += p.CurrentStock * p.CostPrice
			totalStock += p.CurrentStock
			inGroup[p.ID] = true
		}

		var totalConsumed float64
		for _, c := range snap.Consumptions {
			if inGroup[c.ProductID] {
				totalConsumed += c.Quantity
			}
		}

		e := models.StorageEfficiency{
			LocationID:   id,
			LocationName: names[id],
			Utilization:  utilization[id],
		}
		if e.LocationName == "" {
			e.LocationName = "Unknown"
		}
		if totalStock > 0 {
			e.CostPerUnit = totalValue / totalStock
			e.TurnoverRate = totalConsumed / totalStock
		}
		eff = append(eff, e)
	}
	return eff
}

// wasteAndEfficiency returns the waste percentage and production efficiency
// for a produced/wasted pair. Nothing produced means no waste and full
// efficiency rather than a division error.
func wasteAndEfficiency(produced, wasted float64) (waste, efficiency float64) {
	if produced <= 0 {
		return 0, 100
	}
	return wasted / produced * 100, (produced - wasted) / produced * 100
}
