package models

// ShoppingItem represents a derived replenishment request for an ingredient
// below its minimum stock. The list is rebuilt on every ingredient change;
// only the completed flag survives regeneration, matched by ingredient id.
type ShoppingItem struct {
	IngredientID      string           `json:"ingredientId"`
	Name              string           `json:"name"`
	Unit              string           `json:"unit"`
	Quantity          float64          `json:"quantity"`
	EstimatedCost     float64          `json:"estimatedCost"`
	Priority          ShoppingPriority `json:"priority"`
	ResponsibleChefID string           `json:"responsibleChefId"`
	Completed         bool             `json:"completed"`

	StorageLocationID string             `json:"storageLocationId"`
	Category          IngredientCategory `json:"category"`
	Supplier          string             `json:"supplier"`
	Notes             string             `json:"notes"`
}

// ShoppingPriority represents the urgency of a shopping item
type ShoppingPriority string

const (
	// Shopping priorities
	ShoppingUrgent ShoppingPriority = "DRINGEND"
	ShoppingNormal ShoppingPriority = "NORMAL"
)
