package api

import (
	"net/http"

	"brigade/internal/dashboard"
	"brigade/internal/models"
	"brigade/internal/monitoring"
	"brigade/internal/store"

	"github.com/gin-gonic/gin"
)

// KitchenAPI represents the main API handler for the kitchen inventory
type KitchenAPI struct {
	Router  *gin.Engine
	Store   *store.Store
	Hub     *dashboard.Hub
	Monitor *monitoring.Monitor

	authEnabled bool
	jwtSecret   string
}

// NewKitchenAPI creates a new kitchen API instance wired to the entity store,
// the websocket hub, and the runtime monitor.
func NewKitchenAPI(st *store.Store, hub *dashboard.Hub, monitor *monitoring.Monitor, authEnabled bool, jwtSecret string) *KitchenAPI {
	api := &KitchenAPI{
		Router:      gin.Default(),
		Store:       st,
		Hub:         hub,
		Monitor:     monitor,
		authEnabled: authEnabled,
		jwtSecret:   jwtSecret,
	}

	api.setupRoutes()
	return api
}

// setupRoutes configures all API endpoints
func (k *KitchenAPI) setupRoutes() {
	// Health check
	k.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Brigade API is running"})
	})

	// Live derived-state feed for the dashboard
	k.Router.GET("/ws", k.Hub.HandleWebSocket)

	v1 := k.Router.Group("/api/v1")
	if k.authEnabled {
		v1.Use(AuthMiddleware(k.jwtSecret))
	}
	{
		// Brigade management
		v1.GET("/chefs", k.ListChefs)
		v1.POST("/chefs", k.CreateChef)
		v1.PUT("/chefs/:id", k.UpdateChef)

		// Ingredient management
		v1.GET("/ingredients", k.ListIngredients)
		v1.POST("/ingredients", k.CreateIngredient)
		v1.PUT("/ingredients/:id", k.UpdateIngredient)
		v1.DELETE("/ingredients/:id", k.DeleteIngredient)
		v1.POST("/ingredients/:id/stock", k.UpdateIngredientStock)
		v1.POST("/ingredients/:id/move", k.MoveIngredient)

		// Storage locations
		v1.GET("/locations", k.ListLocations)
		v1.POST("/locations", k.CreateLocation)
		v1.PUT("/locations/:id", k.UpdateLocation)
		v1.DELETE("/locations/:id", k.DeleteLocation)

		// Elaborated products, production, and consumption
		v1.GET("/products", k.ListProducts)
		v1.POST("/products", k.CreateProduct)
		v1.PUT("/products/:id", k.UpdateProduct)
		v1.DELETE("/products/:id", k.DeleteProduct)
		v1.GET("/batches", k.ListBatches)
		v1.POST("/batches", k.CreateBatch)
		v1.GET("/consumption", k.ListConsumption)
		v1.POST("/consumption", k.RecordConsumption)

		// Derived state
		v1.GET("/shopping", k.GetShoppingList)
		v1.POST("/shopping/:ingredient_id/toggle", k.ToggleShoppingItem)
		v1.POST("/shopping/chefs/:chef_id/complete", k.CompleteChefItems)
		v1.GET("/alerts", k.GetAlerts)
		v1.GET("/alerts/stats", k.GetAlertStats)
		v1.POST("/alerts/:id/dismiss", k.DismissAlert)
		v1.GET("/stats", k.GetStats)

		// Budget
		v1.GET("/budget", k.GetBudget)
		v1.PUT("/budget", k.SetBudget)

		// Runtime metrics (JSON; prometheus runs on the metrics port)
		v1.GET("/runtime", k.GetRuntimeMetrics)
	}
}

// Brigade handlers

func (k *KitchenAPI) ListChefs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"chefs": k.Store.Chefs()})
}

func (k *KitchenAPI) CreateChef(c *gin.Context) {
	var chef models.Chef
	if err := c.ShouldBindJSON(&chef); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chef = k.Store.AddChef(chef)
	c.JSON(http.StatusCreated, gin.H{"chef": chef})
}

func (k *KitchenAPI) UpdateChef(c *gin.Context) {
	var chef models.Chef
	if err := c.ShouldBindJSON(&chef); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	chef.ID = c.Param("id")

	if err := k.Store.UpdateChef(chef); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chef not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"chef": chef})
}

// Ingredient handlers

func (k *KitchenAPI) ListIngredients(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ingredients": k.Store.Ingredients()})
}

func (k *KitchenAPI) CreateIngredient(c *gin.Context) {
	var ing models.Ingredient
	if err := c.ShouldBindJSON(&ing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ing = k.Store.AddIngredient(ing)
	c.JSON(http.StatusCreated, gin.H{"ingredient": ing})
}

func (k *KitchenAPI) UpdateIngredient(c *gin.Context) {
	var ing models.Ingredient
	if err := c.ShouldBindJSON(&ing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ing.ID = c.Param("id")

	if err := k.Store.UpdateIngredient(ing); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredient": ing})
}

func (k *KitchenAPI) DeleteIngredient(c *gin.Context) {
	if err := k.Store.DeleteIngredient(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ingredient deleted successfully"})
}

func (k *KitchenAPI) UpdateIngredientStock(c *gin.Context) {
	var req struct {
		Stock float64 `json:"stock"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := k.Store.UpdateIngredientStock(c.Param("id"), req.Stock); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock updated successfully"})
}

func (k *KitchenAPI) MoveIngredient(c *gin.Context) {
	var req struct {
		LocationID string `json:"location_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := k.Store.MoveIngredient(c.Param("id"), req.LocationID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ingredient moved successfully"})
}

// Storage location handlers

func (k *KitchenAPI) ListLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": k.Store.Locations()})
}

func (k *KitchenAPI) CreateLocation(c *gin.Context) {
	var loc models.StorageLocation
	if err := c.ShouldBindJSON(&loc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loc = k.Store.AddLocation(loc)
	c.JSON(http.StatusCreated, gin.H{"location": loc})
}

func (k *KitchenAPI) UpdateLocation(c *gin.Context) {
	var loc models.StorageLocation
	if err := c.ShouldBindJSON(&loc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	loc.ID = c.Param("id")

	if err := k.Store.UpdateLocation(loc); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Storage location not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"location": loc})
}

func (k *KitchenAPI) DeleteLocation(c *gin.Context) {
	if err := k.Store.DeleteLocation(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Storage location not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Storage location deleted successfully"})
}
