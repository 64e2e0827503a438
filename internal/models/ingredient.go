package models

import "time"

// Ingredient represents a raw stock item tracked by quantity, thresholds,
// and storage/ownership metadata.
type Ingredient struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Unit              string             `json:"unit"`
	CurrentStock      float64            `json:"currentStock"`
	MinStock          float64            `json:"minStock"`
	MaxStock          float64            `json:"maxStock"`
	EstimatedPrice    float64            `json:"estimatedPrice"` // per unit
	ResponsibleChefID string             `json:"responsibleChefId"`
	StorageLocationID string             `json:"storageLocationId"`
	Category          IngredientCategory `json:"category"`
	Priority          IngredientPriority `json:"priority"`
	Supplier          string             `json:"supplier"`
	Barcode           string             `json:"barcode,omitempty"`
	ExpiryDate        *time.Time         `json:"expiryDate,omitempty"`
	LastRestocked     time.Time          `json:"lastRestocked"`
	Notes             string             `json:"notes"`
	StorageConditions StorageConditions  `json:"storageConditions"`
	AutoReorder       bool               `json:"autoReorder"`
	ReorderPoint      float64            `json:"reorderPoint"`
	LeadTime          int                `json:"leadTime"` // delivery time in days
	BatchSize         float64            `json:"batchSize"`
}

// IngredientCategory represents the category of an ingredient
type IngredientCategory string

const (
	// Ingredient categories
	CategoryMeat       IngredientCategory = "meat"
	CategoryFish       IngredientCategory = "fish"
	CategoryVegetables IngredientCategory = "vegetables"
	CategoryDairy      IngredientCategory = "dairy"
	CategoryGrains     IngredientCategory = "grains"
	CategorySpices     IngredientCategory = "spices"
	CategoryBeverages  IngredientCategory = "beverages"
	CategoryFrozen     IngredientCategory = "frozen"
	CategoryCanned     IngredientCategory = "canned"
	CategoryFresh      IngredientCategory = "fresh"
)

// IngredientPriority represents the replenishment priority of an ingredient
type IngredientPriority string

const (
	// Ingredient priorities
	PriorityLow      IngredientPriority = "low"
	PriorityMedium   IngredientPriority = "medium"
	PriorityHigh     IngredientPriority = "high"
	PriorityCritical IngredientPriority = "critical"
)
