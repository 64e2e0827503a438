package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// ApiClient handles API requests to the Brigade API
type ApiClient struct {
	httpClient *http.Client
	BaseURL    string
	Token      string
	UseMock    bool
}

// NewApiClient creates a new API client
func NewApiClient() *ApiClient {
	baseURL := os.Getenv("BRIGADE_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := &ApiClient{
		httpClient: &http.Client{
			Timeout: time.Second * 10,
		},
		BaseURL: baseURL,
		Token:   os.Getenv("BRIGADE_API_TOKEN"),
		UseMock: false, // Default to trying the real server first
	}

	// Verify connectivity - if server is not available, use mock data
	if !client.ping() {
		fmt.Printf("Warning: API server at %s is not available. Using mock data.\n", baseURL)
		client.UseMock = true
	}

	return client
}

// ping checks if the API server is available
func (c *ApiClient) ping() bool {
	resp, err := c.httpClient.Get(c.BaseURL + "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Ingredient represents one raw ingredient as returned by the API
type Ingredient struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	CurrentStock   float64 `json:"currentStock"`
	MinStock       float64 `json:"minStock"`
	MaxStock       float64 `json:"maxStock"`
	Unit           string  `json:"unit"`
	EstimatedPrice float64 `json:"estimatedPrice"`
	Supplier       string  `json:"supplier"`
}

// ShoppingItem represents one entry on the derived shopping list
type ShoppingItem struct {
	IngredientID      string  `json:"ingredientId"`
	Name              string  `json:"name"`
	Quantity          float64 `json:"quantity"`
	Unit              string  `json:"unit"`
	EstimatedCost     float64 `json:"estimatedCost"`
	Priority          string  `json:"priority"`
	Completed         bool    `json:"completed"`
	ResponsibleChefID string  `json:"responsibleChefId"`
}

// Alert represents one active alert
type Alert struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Action   string `json:"action"`
}

// Stats represents the aggregate kitchen stats
type Stats struct {
	CriticalItems       int     `json:"criticalItems"`
	LowStockItems       int     `json:"lowStockItems"`
	ShoppingItems       int     `json:"shoppingItems"`
	ExpiringItems       int     `json:"expiringItems"`
	WeeklyBudget        float64 `json:"weeklyBudget"`
	WeeklySpent         float64 `json:"weeklySpent"`
	ActiveChefs         int     `json:"activeChefs"`
	StorageUtilization  float64 `json:"storageUtilization"`
	TotalInventoryValue float64 `json:"totalInventoryValue"`
	AverageEfficiency   float64 `json:"averageEfficiency"`
}

// get performs an authenticated GET and decodes the response into v.
func (c *ApiClient) get(path string, v any) error {
	req, err := http.NewRequest("GET", c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s failed with status code: %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

// post performs an authenticated POST with an optional JSON body.
func (c *ApiClient) post(path string, body any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequest("POST", c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("POST %s failed with status code: %d", path, resp.StatusCode)
	}
	return nil
}

// GetStats retrieves the aggregate kitchen stats
func (c *ApiClient) GetStats() (*Stats, error) {
	if c.UseMock {
		return c.getMockStats(), nil
	}

	var stats Stats
	if err := c.get("/api/v1/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetIngredients retrieves all ingredients
func (c *ApiClient) GetIngredients() ([]Ingredient, error) {
	if c.UseMock {
		return c.getMockIngredients(), nil
	}

	var payload struct {
		Ingredients []Ingredient `json:"ingredients"`
	}
	if err := c.get("/api/v1/ingredients", &payload); err != nil {
		return nil, err
	}
	return payload.Ingredients, nil
}

// UpdateIngredientStock sets the stock level of an ingredient
func (c *ApiClient) UpdateIngredientStock(id string, stock float64) error {
	if c.UseMock {
		return nil
	}
	return c.post(fmt.Sprintf("/api/v1/ingredients/%s/stock", id), map[string]float64{"stock": stock})
}

// GetShoppingList retrieves the derived shopping list
func (c *ApiClient) GetShoppingList() ([]ShoppingItem, error) {
	if c.UseMock {
		return c.getMockShoppingList(), nil
	}

	var payload struct {
		ShoppingList []ShoppingItem `json:"shopping_list"`
	}
	if err := c.get("/api/v1/shopping", &payload); err != nil {
		return nil, err
	}
	return payload.ShoppingList, nil
}

// ToggleShoppingItem flips the completed flag of a shopping item
func (c *ApiClient) ToggleShoppingItem(ingredientID string) error {
	if c.UseMock {
		return nil
	}
	return c.post(fmt.Sprintf("/api/v1/shopping/%s/toggle", ingredientID), nil)
}

// GetAlerts retrieves all active alerts
func (c *ApiClient) GetAlerts() ([]Alert, error) {
	if c.UseMock {
		return c.getMockAlerts(), nil
	}

	var payload struct {
		Alerts []Alert `json:"alerts"`
	}
	if err := c.get("/api/v1/alerts", &payload); err != nil {
		return nil, err
	}
	return payload.Alerts, nil
}

// DismissAlert dismisses an alert by id
func (c *ApiClient) DismissAlert(id string) error {
	if c.UseMock {
		return nil
	}
	return c.post(fmt.Sprintf("/api/v1/alerts/%s/dismiss", id), nil)
}

// Mock data generators

func (c *ApiClient) getMockStats() *Stats {
	return &Stats{
		CriticalItems:       2,
		LowStockItems:       5,
		ShoppingItems:       7,
		ExpiringItems:       3,
		WeeklyBudget:        2500,
		WeeklySpent:         830.50,
		ActiveChefs:         4,
		StorageUtilization:  68.5,
		TotalInventoryValue: 4210.75,
		AverageEfficiency:   91.2,
	}
}

func (c *ApiClient) getMockIngredients() []Ingredient {
	return []Ingredient{
		{ID: "ing-1", Name: "Tomatoes", Category: "vegetables", CurrentStock: 0, MinStock: 10, MaxStock: 40, Unit: "kg", EstimatedPrice: 2.80, Supplier: "Metro"},
		{ID: "ing-2", Name: "Olive Oil", Category: "fresh", CurrentStock: 4, MinStock: 6, MaxStock: 12, Unit: "l", EstimatedPrice: 9.50, Supplier: "Metro"},
		{ID: "ing-3", Name: "Flour", Category: "grains", CurrentStock: 25, MinStock: 10, MaxStock: 50, Unit: "kg", EstimatedPrice: 1.20, Supplier: "Transgourmet"},
		{ID: "ing-4", Name: "Salmon", Category: "fish", CurrentStock: 3, MinStock: 5, MaxStock: 15, Unit: "kg", EstimatedPrice: 24.00, Supplier: "Deutsche See"},
	}
}

func (c *ApiClient) getMockShoppingList() []ShoppingItem {
	return []ShoppingItem{
		{IngredientID: "ing-1", Name: "Tomatoes", Quantity: 40, Unit: "kg", EstimatedCost: 112, Priority: "DRINGEND"},
		{IngredientID: "ing-2", Name: "Olive Oil", Quantity: 8, Unit: "l", EstimatedCost: 76, Priority: "NORMAL"},
		{IngredientID: "ing-4", Name: "Salmon", Quantity: 12, Unit: "kg", EstimatedCost: 288, Priority: "NORMAL", Completed: true},
	}
}

func (c *ApiClient) getMockAlerts() []Alert {
	return []Alert{
		{ID: "stock-ing-1", Type: "stock", Severity: "critical", Message: "Tomatoes is completely out of stock", Action: "reorder_immediate"},
		{ID: "expiry-ing-4", Type: "expiry", Severity: "warning", Message: "Salmon expires in 3 days", Action: "use_immediately"},
		{ID: "storage-loc-1", Type: "storage", Severity: "warning", Message: "Walk-in cooler is at 87.0% of capacity", Action: "plan_reorganization"},
	}
}
