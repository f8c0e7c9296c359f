package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chakula/internal/config"
	"chakula/internal/models"
)

// CreateRestaurant registers a new restaurant.
func CreateRestaurant(c *gin.Context) {
	var input struct {
		Name          string `json:"name" binding:"required"`
		StreetAddress string `json:"street_address" binding:"required"`
		ZipCode       string `json:"zip_code" binding:"required"`
		ContactPhone  string `json:"contact_phone"`
		ContactEmail  string `json:"contact_email"`
		CityID        uint   `json:"city_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant := models.Restaurant{
		Name:          input.Name,
		StreetAddress: input.StreetAddress,
		ZipCode:       input.ZipCode,
		ContactPhone:  input.ContactPhone,
		ContactEmail:  input.ContactEmail,
		CityID:        input.CityID,
	}
	if err := config.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create restaurant: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"restaurant": restaurant})
}

// GetRestaurant retrieves a restaurant with its menu and city.
func GetRestaurant(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.
		Preload("City.State").
		Preload("MenuItems.Category").
		First(&restaurant, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// ListRestaurants lists all restaurants, optionally filtered by city.
func ListRestaurants(c *gin.Context) {
	query := config.DB.Preload("City.State")
	if cityID := c.Query("city_id"); cityID != "" {
		query = query.Where("city_id = ?", cityID)
	}

	var restaurants []models.Restaurant
	if err := query.Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch restaurants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": restaurants})
}

// UpdateRestaurant modifies an existing restaurant.
func UpdateRestaurant(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var input struct {
		Name          *string `json:"name"`
		StreetAddress *string `json:"street_address"`
		ZipCode       *string `json:"zip_code"`
		ContactPhone  *string `json:"contact_phone"`
		ContactEmail  *string `json:"contact_email"`
		CityID        *uint   `json:"city_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		restaurant.Name = *input.Name
	}
	if input.StreetAddress != nil {
		restaurant.StreetAddress = *input.StreetAddress
	}
	if input.ZipCode != nil {
		restaurant.ZipCode = *input.ZipCode
	}
	if input.ContactPhone != nil {
		restaurant.ContactPhone = *input.ContactPhone
	}
	if input.ContactEmail != nil {
		restaurant.ContactEmail = *input.ContactEmail
	}
	if input.CityID != nil {
		restaurant.CityID = *input.CityID
	}

	if err := config.DB.Save(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update restaurant: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// DeleteRestaurant removes a restaurant by ID.
func DeleteRestaurant(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	res := config.DB.Delete(&models.Restaurant{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete restaurant"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted"})
}

// AddRestaurantOwner links a user to a restaurant as its owner.
func AddRestaurantOwner(c *gin.Context) {
	var input struct {
		RestaurantID uint `json:"restaurant_id" binding:"required"`
		OwnerID      uint `json:"owner_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, input.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	var owner models.User
	if err := config.DB.First(&owner, input.OwnerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	link := models.RestaurantOwner{RestaurantID: restaurant.ID, OwnerID: owner.ID}
	if err := config.DB.Create(&link).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not link owner: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"restaurant_owner": link})
}

// RemoveRestaurantOwner unlinks an owner from a restaurant.
func RemoveRestaurantOwner(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	res := config.DB.Delete(&models.RestaurantOwner{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove owner link"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Owner link not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Owner link removed"})
}
