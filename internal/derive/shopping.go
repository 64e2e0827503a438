package derive

import "brigade/internal/models"

// BuildShoppingList derives the replenishment list from the full ingredient
// collection. It is a full rebuild, not an incremental diff: every ingredient
// below its minimum emits an item sized to refill up to maxStock, and
// ingredients at or above minimum drop off the list. The completed flag of a
// pre-existing item is carried forward by ingredient id so regeneration never
// resets purchase progress.
func BuildShoppingList(ingredients []models.Ingredient, prev []models.ShoppingItem) []models.ShoppingItem {
	completed := make(map[string]bool, len(prev))
	for _, item := range prev {
		completed[item.IngredientID] = item.Completed
	}

	list := make([]models.ShoppingItem, 0)
	for _, ing := range ingredients {
		if ing.CurrentStock >= ing.MinStock {
			continue
		}

		// maxStock can sit below currentStock after an external edit;
		// never emit a negative order quantity.
		quantity := ing.MaxStock - ing.CurrentStock
		if quantity < 0 {
			quantity = 0
		}

		priority := models.ShoppingNormal
		if ing.CurrentStock == 0 {
			priority = models.ShoppingUrgent
		}

		list = append(list, models.ShoppingItem{
			IngredientID:      ing.ID,
			Name:              ing.Name,
			Unit:              ing.Unit,
			Quantity:          quantity,
			EstimatedCost:     quantity * ing.EstimatedPrice,
			Priority:          priority,
			ResponsibleChefID: ing.ResponsibleChefID,
			Completed:         completed[ing.ID],
			StorageLocationID: ing.StorageLocationID,
			Category:          ing.Category,
			Supplier:          ing.Supplier,
			Notes:             ing.Notes,
		})
	}
	return list
}
