package models

import "time"

// ElaboratedProduct represents a prepared item with its own recipe, shelf
// life, and stock levels, distinct from raw ingredients.
type ElaboratedProduct struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    ProductCategory `json:"category"`
	Price       float64         `json:"price"`     // sale price
	CostPrice   float64         `json:"costPrice"` // production cost
	Margin      float64         `json:"margin"`    // profit margin %

	Ingredients     []RecipeIngredient `json:"ingredients"`
	PreparationTime int                `json:"preparationTime"` // minutes
	CookingTime     int                `json:"cookingTime"`     // minutes
	Yield           float64            `json:"yield"`
	YieldUnit       string             `json:"yieldUnit"`

	ShelfLife         int               `json:"shelfLife"` // days
	StorageConditions StorageConditions `json:"storageConditions"`

	CurrentStock        float64 `json:"currentStock"`
	MinStock            float64 `json:"minStock"`
	MaxStock            float64 `json:"maxStock"`
	AutoProduction      bool    `json:"autoProduction"`
	ProductionBatchSize float64 `json:"productionBatchSize"`

	QualityScore    float64 `json:"qualityScore"`    // 1-10
	CustomerRating  float64 `json:"customerRating"`  // 1-5
	WastePercentage float64 `json:"wastePercentage"` // lifetime waste %

	ResponsibleChefID string    `json:"responsibleChefId"`
	StorageLocationID string    `json:"storageLocationId"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
	IsActive          bool      `json:"isActive"`
}

// RecipeIngredient represents one ingredient line of a product's recipe.
type RecipeIngredient struct {
	IngredientID string  `json:"ingredientId"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	CostPerUnit  float64 `json:"costPerUnit"`
	TotalCost    float64 `json:"totalCost"`
	WasteFactor  float64 `json:"wasteFactor"` // 0-1
}

// ProductCategory represents the menu category of an elaborated product
type ProductCategory string

const (
	// Product categories
	CategoryMains      ProductCategory = "Hauptgerichte"
	CategoryStarters   ProductCategory = "Vorspeisen"
	CategoryDesserts   ProductCategory = "Nachspeisen"
	CategoryDrinks     ProductCategory = "Getränke"
	CategorySauces     ProductCategory = "Saucen"
	CategorySpiceMixes ProductCategory = "Gewürzmischungen"
)

// ProductionBatch represents one manufacturing run of an elaborated product.
// Immutable once created; creating a batch raises the product's stock by the
// batch quantity.
type ProductionBatch struct {
	ID              string            `json:"id"`
	ProductID       string            `json:"productId"`
	BatchNumber     string            `json:"batchNumber"`
	Quantity        float64           `json:"quantity"`
	Unit            string            `json:"unit"`
	IngredientsUsed []BatchIngredient `json:"ingredientsUsed"`

	ProductionDate    time.Time `json:"productionDate"`
	ExpiryDate        time.Time `json:"expiryDate"` // productionDate + product shelf life
	ResponsibleChefID string    `json:"responsibleChefId"`
	QualityCheck      bool      `json:"qualityCheck"`
	Notes             string    `json:"notes"`

	TotalCost       float64 `json:"totalCost"` // sum of ingredient costs
	WastePercentage float64 `json:"wastePercentage"`
	Efficiency      float64 `json:"efficiency"`
}

// BatchIngredient represents one ingredient consumed by a production batch.
type BatchIngredient struct {
	IngredientID   string  `json:"ingredientId"`
	QuantityUsed   float64 `json:"quantityUsed"`
	QuantityWasted float64 `json:"quantityWasted"`
	Cost           float64 `json:"cost"`
}

// ConsumptionRecord represents stock leaving a product's inventory, whether
// sold, used internally, or wasted. Recording one lowers the product's stock,
// floored at zero.
type ConsumptionRecord struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	BatchID   string  `json:"batchId"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`

	ConsumptionDate time.Time    `json:"consumptionDate"`
	CustomerType    CustomerType `json:"customerType"`
	CustomerID      string       `json:"customerId,omitempty"`
	Notes           string       `json:"notes"`

	Revenue     float64 `json:"revenue"` // quantity x product price
	Profit      float64 `json:"profit"`  // revenue - allocated batch cost
	WasteReason string  `json:"wasteReason,omitempty"`
}

// CustomerType represents who (or what) consumed a product
type CustomerType string

const (
	// Consumption kinds
	ConsumerInternal CustomerType = "internal"
	ConsumerExternal CustomerType = "external"
	ConsumerWaste    CustomerType = "waste"
)
