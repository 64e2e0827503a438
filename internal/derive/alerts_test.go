package derive

import (
	"testing"
	"time"

	"brigade/internal/models"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func freshIngredient(id string, stock float64) models.Ingredient {
	ing := ingredient(id, stock, 5, 15, 2)
	ing.LastRestocked = testNow
	return ing
}

func alertsByID(alerts []models.Alert) map[string]models.Alert {
	byID := make(map[string]models.Alert, len(alerts))
	for _, a := range alerts {
		byID[a.ID] = a
	}
	return byID
}

func TestBuildAlertsStockFamily(t *testing.T) {
	snap := Snapshot{Ingredients: []models.Ingredient{
		freshIngredient("empty", 0),
		freshIngredient("low", 1.5),
		freshIngredient("fine", 10),
	}}

	alerts := BuildAlerts(snap, nil, AlertConfig{}, testNow)
	byID := alertsByID(alerts)

	assert.Len(t, alerts, 2)

	critical := byID["stock-empty"]
	assert.Equal(t, models.AlertStock, critical.Type)
	assert.Equal(t, models.SeverityCritical, critical.Severity)
	assert.Equal(t, models.ActionReorderImmediate, critical.Action)
	assert.Equal(t, "Ingredient empty is completely out of stock", critical.Message)

	warning := byID["stock-low"]
	assert.Equal(t, models.SeverityWarning, warning.Severity)
	assert.Equal(t, models.ActionReorderSoon, warning.Action)
}

func TestBuildAlertsOneStockAlertPerIngredient(t *testing.T) {
	// zero stock satisfies both stock conditions; only the critical one fires
	snap := Snapshot{Ingredients: []models.Ingredient{freshIngredient("a", 0)}}

	alerts := BuildAlerts(snap, nil, AlertConfig{}, testNow)

	assert.Len(t, alerts, 1)
	assert.Equal(t, models.SeverityCritical, alerts[0].Severity)
}

func TestBuildAlertsNoUpdateFamily(t *testing.T) {
	stale := freshIngredient("stale", 10)
	stale.LastRestocked = testNow.AddDate(0, 0, -9)
	ancient := freshIngredient("ancient", 10)
	ancient.LastRestocked = testNow.AddDate(0, 0, -20)

	snap := Snapshot{Ingredients: []models.Ingredient{stale, ancient, freshIngredient("fresh", 10)}}
	alerts := BuildAlerts(snap, nil, AlertConfig{}, testNow)
	byID := alertsByID(alerts)

	assert.Len(t, alerts, 2)
	assert.Equal(t, models.SeverityWarning, byID["no-update-stale"].Severity)
	assert.Equal(t, models.ActionCheckStock, byID["no-update-stale"].Action)

	critical := byID["no-update-ancient"]
	assert.Equal(t, models.SeverityCritical, critical.Severity)
	assert.Equal(t, models.ActionVerifyStock, critical.Action)
	assert.Equal(t, "Ingredient ancient has not been updated in 20 days", critical.Message)
}

func TestBuildAlertsExpiryFamily(t *testing.T) {
	withExpiry := func(id string, days int) models.Ingredient {
		ing := freshIngredient(id, 10)
		expiry := testNow.AddDate(0, 0, days)
		ing.ExpiryDate = &expiry
		return ing
	}

	overdue := freshIngredient("overdue", 10)
	past := testNow.AddDate(0, 0, -1)
	overdue.ExpiryDate = &past

	snap := Snapshot{Ingredients: []models.Ingredient{
		overdue,
		withExpiry("soon", 2),
		withExpiry("week", 6),
		withExpiry("far", 30),
	}}

	alerts := BuildAlerts(snap, nil, AlertConfig{}, testNow)
	byID := alertsByID(alerts)

	assert.Len(t, alerts, 3)
	assert.Equal(t, models.ActionDiscardImmediate, byID["expiry-overdue"].Action)
	assert.Equal(t, models.SeverityCritical, byID["expiry-overdue"].Severity)
	assert.Equal(t, models.ActionUseImmediately, byID["expiry-soon"].Action)
	assert.Equal(t, models.SeverityCritical, byID["expiry-soon"].Severity)
	assert.Equal(t, models.ActionPlanUsage, byID["expiry-week"].Action)
	assert.Equal(t, models.SeverityWarning, byID["expiry-week"].Severity)
}

func TestBuildAlertsStorageFamily(t *testing.T) {
	snap := Snapshot{Locations: []models.StorageLocation{
		{ID: "full", Name: "Walk-in", Capacity: 100, CurrentUsage: 96},
		{ID: "tight", Name: "Pantry", Capacity: 100, CurrentUsage: 87},
		{ID: "fine", Name: "Freezer", Capacity: 100, CurrentUsage: 60},
		{ID: "unsized", Name: "Shelf", Capacity: 0, CurrentUsage: 10},
	}}

	alerts := BuildAlerts(snap, nil, AlertConfig{}, testNow)
	byID := alertsByID(alerts)

	assert.Len(t, alerts, 2)
	assert.Equal(t, models.SeverityCritical, byID["storage-full"].Severity)
	assert.Equal(t, models.ActionReorganizeImmediate, byID["storage-full"].Action)
	assert.Equal(t, models.SeverityWarning, byID["storage-tight"].Severity)
	assert.Equal(t, "Walk-in is at 96.0% of capacity", byID["storage-full"].Message)
}

func TestBuildAlertsProductFamilies(t *testing.T) {
	product := models.ElaboratedProduct{
		ID: "p1", Name: "Demi-Glace", CurrentStock: 5, IsActive: true,
	}
	batch := models.ProductionBatch{
		ID: "b1", ProductID: "p1", BatchNumber: "B-b1", Quantity: 10,
		ExpiryDate: testNow.AddDate(0, 0, 2),
	}
	analytics := map[string]models.ProductAnalytics{
		"p1": {ProductID: "p1", Efficiency: 60, WastePercentage: 40},
	}

	snap := Snapshot{
		Products: []models.ElaboratedProduct{product},
		Batches:  []models.ProductionBatch{batch},
	}

	alerts := BuildAlerts(snap, analytics, AlertConfig{}, testNow)
	byID := alertsByID(alerts)

	assert.Len(t, alerts, 3)
	assert.Equal(t, models.AlertExpiry, byID["expiry-p1"].Type)
	assert.Equal(t, models.AlertLifecycle, byID["lifecycle-p1"].Type)
	assert.Equal(t, models.AlertMermas, byID["mermas-p1"].Type)
	assert.Equal(t, "Demi-Glace has a batch expiring soon (B-b1)", byID["expiry-p1"].Message)
}

func TestBuildAlertsHealthyProductIsQuiet(t *testing.T) {
	// entries built by the analytics pass default to 100% efficiency
	snap := Snapshot{Products: []models.ElaboratedProduct{{ID: "p1", Name: "Stock", IsActive: true}}}
	analytics := BuildProductAnalytics(snap)

	alerts := BuildAlerts(snap, analytics, AlertConfig{}, testNow)

	assert.Empty(t, alerts)
}

func TestBuildAlertsBatchExpiryIgnoresConsumedBatches(t *testing.T) {
	product := models.ElaboratedProduct{ID: "p1", Name: "Sauce", CurrentStock: 5}
	expiring := models.ProductionBatch{
		ID: "b1", ProductID: "p1", Quantity: 10, ExpiryDate: testNow.AddDate(0, 0, 1),
	}
	snap := Snapshot{
		Products:     []models.ElaboratedProduct{product},
		Batches:      []models.ProductionBatch{expiring},
		Consumptions: []models.ConsumptionRecord{{ID: "c1", ProductID: "p1", BatchID: "b1", Quantity: 10}},
	}
	analytics := map[string]models.ProductAnalytics{"p1": {Efficiency: 100}}

	alerts := BuildAlerts(snap, analytics, AlertConfig{}, testNow)

	for _, a := range alerts {
		assert.NotEqual(t, "expiry-p1", a.ID)
	}
}

func TestBuildAlertsZeroStockProductNeverExpires(t *testing.T) {
	product := models.ElaboratedProduct{ID: "p1", Name: "Sauce", CurrentStock: 0}
	snap := Snapshot{
		Products: []models.ElaboratedProduct{product},
		Batches: []models.ProductionBatch{
			{ID: "b1", ProductID: "p1", Quantity: 10, ExpiryDate: testNow.AddDate(0, 0, 1)},
		},
	}
	analytics := map[string]models.ProductAnalytics{"p1": {Efficiency: 100}}

	alerts := BuildAlerts(snap, analytics, AlertConfig{}, testNow)

	for _, a := range alerts {
		assert.NotEqual(t, "expiry-p1", a.ID)
	}
}

func TestBuildAlertsDeterministic(t *testing.T) {
	snap := Snapshot{Ingredients: []models.Ingredient{
		freshIngredient("a", 0),
		freshIngredient("b", 1),
	}}

	first := BuildAlerts(snap, nil, AlertConfig{}, testNow)
	second := BuildAlerts(snap, nil, AlertConfig{}, testNow)

	assert.Equal(t, first, second)
}

func TestBuildAlertsCustomThresholds(t *testing.T) {
	loc := models.StorageLocation{ID: "l1", Name: "Cellar", Capacity: 100, CurrentUsage: 75}
	snap := Snapshot{Locations: []models.StorageLocation{loc}}

	none := BuildAlerts(snap, nil, AlertConfig{}, testNow)
	assert.Empty(t, none)

	strict := AlertConfig{StorageWarningPct: 70, StorageCriticalPct: 90}
	alerts := BuildAlerts(snap, nil, strict, testNow)
	assert.Len(t, alerts, 1)
	assert.Equal(t, models.SeverityWarning, alerts[0].Severity)
}
