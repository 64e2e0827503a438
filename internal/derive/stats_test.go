package derive

import (
	"testing"

	"brigade/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildStatsStockCountsAndValue(t *testing.T) {
	snap := Snapshot{
		Chefs: []models.Chef{{ID: "chef1"}, {ID: "chef2"}},
		Ingredients: []models.Ingredient{
			ingredient("a", 0, 5, 15, 2),
			ingredient("b", 3, 5, 15, 4),
			ingredient("c", 10, 5, 15, 1),
		},
	}

	stats := BuildStats(snap, nil, 2500, nil, nil, nil, testNow)

	assert.Equal(t, 1, stats.CriticalItems)
	assert.Equal(t, 1, stats.LowStockItems)
	assert.Equal(t, 2, stats.ActiveChefs)
	assert.Equal(t, 2500.0, stats.WeeklyBudget)
	// 0*2 + 3*4 + 10*1
	assert.InDelta(t, 22.0, stats.TotalInventoryValue, 1e-9)
}

func TestBuildStatsShoppingSplit(t *testing.T) {
	shopping := []models.ShoppingItem{
		{IngredientID: "a", EstimatedCost: 30, Completed: true},
		{IngredientID: "b", EstimatedCost: 10},
		{IngredientID: "c", EstimatedCost: 5},
	}

	stats := BuildStats(Snapshot{}, shopping, 2500, nil, nil, nil, testNow)

	assert.Equal(t, 2, stats.ShoppingItems)
	assert.InDelta(t, 30.0, stats.WeeklySpent, 1e-9)
}

func TestBuildStatsExpiringItems(t *testing.T) {
	soon := testNow.AddDate(0, 0, 3)
	far := testNow.AddDate(0, 0, 30)
	snap := Snapshot{
		Ingredients: []models.Ingredient{
			func() models.Ingredient { i := ingredient("a", 5, 5, 15, 2); i.ExpiryDate = &soon; return i }(),
			func() models.Ingredient { i := ingredient("b", 5, 5, 15, 2); i.ExpiryDate = &far; return i }(),
		},
		Products: []models.ElaboratedProduct{{ID: "p1", CurrentStock: 4}},
		Batches: []models.ProductionBatch{
			{ID: "b1", ProductID: "p1", Quantity: 4, ExpiryDate: testNow.AddDate(0, 0, 2)},
		},
	}

	stats := BuildStats(snap, nil, 0, nil, nil, nil, testNow)

	// one ingredient plus one product batch inside the 7-day window
	assert.Equal(t, 2, stats.ExpiringItems)
}

func TestBuildStatsStorageUtilizationMean(t *testing.T) {
	snap := Snapshot{Locations: []models.StorageLocation{
		{ID: "l1", Capacity: 100, CurrentUsage: 40},
		{ID: "l2", Capacity: 100, CurrentUsage: 80},
	}}

	stats := BuildStats(snap, nil, 0, nil, nil, nil, testNow)

	assert.InDelta(t, 60.0, stats.StorageUtilization, 1e-9)
}

func TestBuildStatsProductAggregates(t *testing.T) {
	snap := Snapshot{
		Products: []models.ElaboratedProduct{
			{ID: "p1", IsActive: true, CurrentStock: 10, CostPrice: 3, QualityScore: 8},
			{ID: "p2", IsActive: false, CurrentStock: 5, CostPrice: 2, QualityScore: 6},
		},
	}
	analytics := map[string]models.ProductAnalytics{
		"p1": {TotalProduced: 10, TotalWasted: 2},
		"p2": {TotalProduced: 10, TotalWasted: 0},
	}

	stats := BuildStats(snap, nil, 0, analytics, nil, nil, testNow)

	assert.Equal(t, 2, stats.TotalElaboratedProducts)
	assert.Equal(t, 1, stats.ActiveElaboratedProducts)
	assert.InDelta(t, 40.0, stats.TotalProductionValue, 1e-9)
	assert.InDelta(t, 7.0, stats.AverageQualityScore, 1e-9)
	assert.InDelta(t, 10.0, stats.TotalWastePercentage, 1e-9)
	assert.InDelta(t, 90.0, stats.AverageEfficiency, 1e-9)
}

func TestBuildStatsEmptyKitchen(t *testing.T) {
	stats := BuildStats(Snapshot{}, nil, 2500, nil, nil, nil, testNow)

	assert.Equal(t, 0, stats.CriticalItems)
	assert.Equal(t, 0.0, stats.TotalInventoryValue)
	assert.Equal(t, 0.0, stats.StorageUtilization)
	assert.Equal(t, 0.0, stats.AverageQualityScore)
	assert.Equal(t, 0.0, stats.TotalWastePercentage)
	assert.Equal(t, 100.0, stats.AverageEfficiency)
}

func TestAllPipelineIsConsistent(t *testing.T) {
	chef := models.Chef{ID: "chef1", Name: "Anna"}
	ing := ingredient("a", 0, 5, 15, 2)
	ing.LastRestocked = testNow
	ing.ResponsibleChefID = "chef1"

	snap := Snapshot{
		Chefs:       []models.Chef{chef},
		Ingredients: []models.Ingredient{ing},
	}

	result := All(snap, nil, 2500, AlertConfig{}, testNow)

	assert.Len(t, result.ShoppingList, 1)
	assert.Equal(t, models.ShoppingUrgent, result.ShoppingList[0].Priority)
	assert.Len(t, result.Alerts, 1)
	assert.Equal(t, "stock-a", result.Alerts[0].ID)
	assert.Equal(t, 1, result.Stats.CriticalItems)
	assert.Equal(t, 1, result.Stats.ShoppingItems)
	assert.Len(t, result.ChefPerformance, 1)

	again := All(snap, result.ShoppingList, 2500, AlertConfig{}, testNow)
	assert.Equal(t, result, again)
}
