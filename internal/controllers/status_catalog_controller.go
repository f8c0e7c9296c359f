package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chakula/internal/config"
	"chakula/internal/models"
)

// CreateStatusCatalog adds a status catalog entry.
func CreateStatusCatalog(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.StatusCatalog{Name: input.Name}
	if err := config.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create status: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": entry})
}

// ListStatusCatalog lists the status catalog.
func ListStatusCatalog(c *gin.Context) {
	var entries []models.StatusCatalog
	if err := config.DB.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch status catalog"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

// DeleteStatusCatalog removes a catalog entry by ID. Existing trail rows keep
// their reference; the catalog is append-mostly.
func DeleteStatusCatalog(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	res := config.DB.Delete(&models.StatusCatalog{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete status"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Status not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status deleted"})
}
