package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"chakula/internal/config"
	"chakula/internal/models"
)

// CreateMenuItem adds a dish to a restaurant's menu.
func CreateMenuItem(c *gin.Context) {
	var input struct {
		Name         string          `json:"name" binding:"required"`
		Ingredients  string          `json:"ingredients"`
		Price        decimal.Decimal `json:"price" binding:"required"`
		CategoryID   uint            `json:"category_id" binding:"required"`
		RestaurantID uint            `json:"restaurant_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !input.Price.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be positive."})
		return
	}

	item := models.MenuItem{
		Name:         input.Name,
		Ingredients:  input.Ingredients,
		Price:        input.Price,
		Active:       true,
		CategoryID:   input.CategoryID,
		RestaurantID: input.RestaurantID,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create menu item: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"menu_item": item})
}

// GetMenuItem retrieves a menu item by ID.
func GetMenuItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var item models.MenuItem
	if err := config.DB.Preload("Category").Preload("Restaurant").First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_item": item})
}

// ListMenuItems lists menu items, optionally per restaurant or category.
func ListMenuItems(c *gin.Context) {
	query := config.DB.Preload("Category")
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch menu items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// UpdateMenuItem modifies a menu item. Changing price here never affects
// already placed orders; those keep their line item snapshots.
func UpdateMenuItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var input struct {
		Name        *string          `json:"name"`
		Ingredients *string          `json:"ingredients"`
		Price       *decimal.Decimal `json:"price"`
		Active      *bool            `json:"active"`
		CategoryID  *uint            `json:"category_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Ingredients != nil {
		item.Ingredients = *input.Ingredients
	}
	if input.Price != nil {
		if !input.Price.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be positive."})
			return
		}
		item.Price = *input.Price
	}
	if input.Active != nil {
		item.Active = *input.Active
	}
	if input.CategoryID != nil {
		item.CategoryID = *input.CategoryID
	}

	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update menu item: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_item": item})
}

// DeleteMenuItem removes a menu item by ID.
func DeleteMenuItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	res := config.DB.Delete(&models.MenuItem{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
