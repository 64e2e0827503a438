package derive

import (
	"time"

	"brigade/internal/models"
)

// Snapshot is a read-only view of the raw entity collections taken by the
// store under its lock. Derivations must not mutate it.
type Snapshot struct {
	Chefs        []models.Chef
	Ingredients  []models.Ingredient
	Locations    []models.StorageLocation
	Products     []models.ElaboratedProduct
	Batches      []models.ProductionBatch
	Consumptions []models.ConsumptionRecord
}

// Result holds every derived collection produced by one recompute pass.
type Result struct {
	ShoppingList      []models.ShoppingItem              `json:"shoppingList"`
	Alerts            []models.Alert                     `json:"alerts"`
	ProductAnalytics  map[string]models.ProductAnalytics `json:"productAnalytics"`
	ChefPerformance   []models.ChefPerformance           `json:"chefPerformance"`
	StorageEfficiency []models.StorageEfficiency         `json:"storageEfficiency"`
	Stats             models.KitchenStats                `json:"stats"`
}

// All runs the full pipeline over one consistent snapshot: shopping list,
// alerts, analytics, and the aggregate stats fold, in dependency order.
// prevShopping supplies the completion flags to carry forward; weeklyBudget
// is reported through the stats unchanged.
func All(snap Snapshot, prevShopping []models.ShoppingItem, weeklyBudget float64, cfg AlertConfig, now time.Time) Result {
	shopping := BuildShoppingList(snap.Ingredients, prevShopping)
	analytics := BuildProductAnalytics(snap)
	chefPerf := BuildChefPerformance(snap, analytics, now)
	storageEff := BuildStorageEfficiency(snap)
	alerts := BuildAlerts(snap, analytics, cfg, now)
	stats := BuildStats(snap, shopping, weeklyBudget, analytics, chefPerf, storageEff, now)

	return Result{
		ShoppingList:      shopping,
		Alerts:            alerts,
		ProductAnalytics:  analytics,
		ChefPerformance:   chefPerf,
		StorageEfficiency: storageEff,
		Stats:             stats,
	}
}
