package models

import "time"

// KitchenStats represents the single summary object combining every derived
// figure the dashboard renders. It has no state of its own and is rebuilt
// whenever any raw collection changes.
type KitchenStats struct {
	CriticalItems int     `json:"criticalItems"`
	ShoppingItems int     `json:"shoppingItems"`
	WeeklyBudget  float64 `json:"weeklyBudget"`
	WeeklySpent   float64 `json:"weeklySpent"`
	ActiveChefs   int     `json:"activeChefs"`

	StorageUtilization  float64 `json:"storageUtilization"`
	ExpiringItems       int     `json:"expiringItems"`
	LowStockItems       int     `json:"lowStockItems"`
	TotalInventoryValue float64 `json:"totalInventoryValue"`

	TotalElaboratedProducts  int     `json:"totalElaboratedProducts"`
	ActiveElaboratedProducts int     `json:"activeElaboratedProducts"`
	TotalProductionValue     float64 `json:"totalProductionValue"`
	AverageQualityScore      float64 `json:"averageQualityScore"`
	TotalWastePercentage     float64 `json:"totalWastePercentage"`
	AverageEfficiency        float64 `json:"averageEfficiency"`

	ChefPerformance   []ChefPerformance   `json:"chefPerformance"`
	StorageEfficiency []StorageEfficiency `json:"storageEfficiency"`
}

// ChefPerformance represents per-chef aggregates over the chef's products.
type ChefPerformance struct {
	ChefID          string    `json:"chefId"`
	ChefName        string    `json:"chefName"`
	TotalProducts   int       `json:"totalProducts"`
	AverageQuality  float64   `json:"averageQuality"`
	TotalRevenue    float64   `json:"totalRevenue"`
	WastePercentage float64   `json:"wastePercentage"`
	Efficiency      float64   `json:"efficiency"`
	LastUpdate      time.Time `json:"lastUpdate"`
}

// StorageEfficiency represents per-location inventory value and turnover for
// elaborated products, keyed strictly by location id.
type StorageEfficiency struct {
	LocationID   string  `json:"locationId"`
	LocationName string  `json:"locationName"`
	Utilization  float64 `json:"utilization"`
	CostPerUnit  float64 `json:"costPerUnit"`
	TurnoverRate float64 `json:"turnoverRate"`
}

// ProductAnalytics represents lifetime production, consumption, and revenue
// figures for one elaborated product.
type ProductAnalytics struct {
	ProductID       string  `json:"productId"`
	TotalProduced   float64 `json:"totalProduced"`
	TotalConsumed   float64 `json:"totalConsumed"`
	TotalWasted     float64 `json:"totalWasted"`
	WastePercentage float64 `json:"wastePercentage"`
	Efficiency      float64 `json:"efficiency"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalProfit     float64 `json:"totalProfit"`
	AverageQuality  float64 `json:"averageQuality"`
	CustomerRating  float64 `json:"customerRating"`
}
