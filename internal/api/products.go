package api

import (
	"net/http"

	"brigade/internal/models"

	"github.com/gin-gonic/gin"
)

// Elaborated product handlers

func (k *KitchenAPI) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": k.Store.Products()})
}

func (k *KitchenAPI) CreateProduct(c *gin.Context) {
	var p models.ElaboratedProduct
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p = k.Store.AddProduct(p)
	c.JSON(http.StatusCreated, gin.H{"product": p})
}

func (k *KitchenAPI) UpdateProduct(c *gin.Context) {
	var p models.ElaboratedProduct
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.ID = c.Param("id")

	if err := k.Store.UpdateProduct(p); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p})
}

func (k *KitchenAPI) DeleteProduct(c *gin.Context) {
	if err := k.Store.DeleteProduct(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// Production batch handlers

func (k *KitchenAPI) ListBatches(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"batches": k.Store.Batches()})
}

func (k *KitchenAPI) CreateBatch(c *gin.Context) {
	var req struct {
		ProductID         string                   `json:"product_id"`
		ResponsibleChefID string                   `json:"responsible_chef_id"`
		Quantity          float64                  `json:"quantity"`
		IngredientsUsed   []models.BatchIngredient `json:"ingredients_used"`
		Notes             string                   `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	batch, err := k.Store.CreateBatch(req.ProductID, req.ResponsibleChefID, req.Quantity, req.IngredientsUsed, req.Notes)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"batch": batch})
}

// Consumption handlers

func (k *KitchenAPI) ListConsumption(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"consumption": k.Store.Consumptions()})
}

func (k *KitchenAPI) RecordConsumption(c *gin.Context) {
	var req struct {
		ProductID    string              `json:"product_id"`
		BatchID      string              `json:"batch_id"`
		Quantity     float64             `json:"quantity"`
		CustomerType models.CustomerType `json:"customer_type"`
		CustomerID   string              `json:"customer_id"`
		Notes        string              `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := k.Store.RecordConsumption(req.ProductID, req.BatchID, req.Quantity, req.CustomerType, req.CustomerID, req.Notes)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"consumption": rec})
}
