package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Shopping list handlers

func (k *KitchenAPI) GetShoppingList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"shopping_list": k.Store.ShoppingList()})
}

func (k *KitchenAPI) ToggleShoppingItem(c *gin.Context) {
	if err := k.Store.ToggleShoppingItem(c.Param("ingredient_id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shopping item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shopping item toggled"})
}

func (k *KitchenAPI) CompleteChefItems(c *gin.Context) {
	k.Store.CompleteChefItems(c.Param("chef_id"))
	c.JSON(http.StatusOK, gin.H{"message": "Chef items marked completed"})
}

// Alert handlers

func (k *KitchenAPI) GetAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alerts": k.Store.Alerts()})
}

func (k *KitchenAPI) GetAlertStats(c *gin.Context) {
	c.JSON(http.StatusOK, k.Store.AlertStats())
}

func (k *KitchenAPI) DismissAlert(c *gin.Context) {
	k.Store.DismissAlert(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Alert dismissed"})
}

// Stats and budget handlers

func (k *KitchenAPI) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, k.Store.Stats())
}

func (k *KitchenAPI) GetBudget(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"weekly_budget": k.Store.WeeklyBudget()})
}

func (k *KitchenAPI) SetBudget(c *gin.Context) {
	var req struct {
		WeeklyBudget float64 `json:"weekly_budget"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	k.Store.SetWeeklyBudget(req.WeeklyBudget)
	c.JSON(http.StatusOK, gin.H{"weekly_budget": req.WeeklyBudget})
}

// GetRuntimeMetrics returns the runtime monitor's snapshot as JSON.
func (k *KitchenAPI) GetRuntimeMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, k.Monitor.GetMetrics())
}
