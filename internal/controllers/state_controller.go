package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chakula/internal/config"
	"chakula/internal/models"
)

// CreateState registers a new state.
func CreateState(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state := models.State{Name: input.Name, Code: input.Code}
	if err := config.DB.Create(&state).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create state: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"state": state})
}

// GetState retrieves a state and its cities.
func GetState(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var state models.State
	if err := config.DB.Preload("Cities").First(&state, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "State not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

// ListStates lists all states.
func ListStates(c *gin.Context) {
	var states []models.State
	if err := config.DB.Find(&states).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch states"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": states})
}

// UpdateState modifies a state.
func UpdateState(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var state models.State
	if err := config.DB.First(&state, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "State not found"})
		return
	}

	var input struct {
		Name *string `json:"name"`
		Code *string `json:"code"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		state.Name = *input.Name
	}
	if input.Code != nil {
		state.Code = *input.Code
	}

	if err := config.DB.Save(&state).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update state: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

// DeleteState removes a state by ID.
func DeleteState(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	res := config.DB.Delete(&models.State{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete state"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "State not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "State deleted"})
}
