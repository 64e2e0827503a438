package derive

import (
	"testing"

	"brigade/internal/models"

	"github.com/stretchr/testify/assert"
)

func ingredient(id string, current, min, max, price float64) models.Ingredient {
	return models.Ingredient{
		ID:             id,
		Name:           "Ingredient " + id,
		Unit:           "kg",
		CurrentStock:   current,
		MinStock:       min,
		MaxStock:       max,
		EstimatedPrice: price,
	}
}

func TestBuildShoppingListEmitsBelowMinimum(t *testing.T) {
	ingredients := []models.Ingredient{
		ingredient("a", 0, 5, 15, 2),
		ingredient("b", 3, 5, 20, 1),
		ingredient("c", 5, 5, 20, 1),
		ingredient("d", 10, 5, 20, 1),
	}

	list := BuildShoppingList(ingredients, nil)

	assert.Len(t, list, 2)
	assert.Equal(t, "a", list[0].IngredientID)
	assert.Equal(t, "b", list[1].IngredientID)
}

func TestBuildShoppingListQuantityAndCost(t *testing.T) {
	list := BuildShoppingList([]models.Ingredient{ingredient("a", 0, 5, 15, 2)}, nil)

	assert.Len(t, list, 1)
	assert.Equal(t, 15.0, list[0].Quantity)
	assert.Equal(t, 30.0, list[0].EstimatedCost)
	assert.Equal(t, models.ShoppingUrgent, list[0].Priority)
}

func TestBuildShoppingListPriority(t *testing.T) {
	list := BuildShoppingList([]models.Ingredient{
		ingredient("empty", 0, 5, 15, 2),
		ingredient("low", 2, 5, 15, 2),
	}, nil)

	assert.Equal(t, models.ShoppingUrgent, list[0].Priority)
	assert.Equal(t, models.ShoppingNormal, list[1].Priority)
}

func TestBuildShoppingListNegativeQuantityClamped(t *testing.T) {
	// maxStock below currentStock after an external edit
	ing := ingredient("a", 4, 5, 3, 2)

	list := BuildShoppingList([]models.Ingredient{ing}, nil)

	assert.Len(t, list, 1)
	assert.Equal(t, 0.0, list[0].Quantity)
	assert.Equal(t, 0.0, list[0].EstimatedCost)
}

func TestBuildShoppingListCarriesCompletedForward(t *testing.T) {
	ingredients := []models.Ingredient{
		ingredient("a", 2, 5, 15, 2),
		ingredient("b", 1, 5, 15, 2),
	}

	first := BuildShoppingList(ingredients, nil)
	first[0].Completed = true

	// lower stock on b so the list regenerates with new quantities
	ingredients[1].CurrentStock = 0
	second := BuildShoppingList(ingredients, first)

	assert.True(t, second[0].Completed)
	assert.False(t, second[1].Completed)
	assert.Equal(t, models.ShoppingUrgent, second[1].Priority)
}

func TestBuildShoppingListDropsReplenished(t *testing.T) {
	ingredients := []models.Ingredient{ingredient("a", 2, 5, 15, 2)}
	first := BuildShoppingList(ingredients, nil)
	assert.Len(t, first, 1)

	ingredients[0].CurrentStock = 12
	second := BuildShoppingList(ingredients, first)
	assert.Empty(t, second)

	// dropping back below minimum starts with a fresh completed flag
	ingredients[0].CurrentStock = 1
	third := BuildShoppingList(ingredients, second)
	assert.Len(t, third, 1)
	assert.False(t, third[0].Completed)
}

func TestBuildShoppingListIdempotent(t *testing.T) {
	ingredients := []models.Ingredient{
		ingredient("a", 0, 5, 15, 2),
		ingredient("b", 3, 5, 20, 1),
	}

	first := BuildShoppingList(ingredients, nil)
	second := BuildShoppingList(ingredients, first)

	assert.Equal(t, first, second)
}
