package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"chakula/internal/config"
	"chakula/internal/models"
)

// ListUsers lists all verified users (admin only).
func ListUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Preload("Address.City.State").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

// GetUser retrieves a verified user by ID.
func GetUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var user models.User
	if err := config.DB.Preload("Address.City.State").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type updateUserInput struct {
	Name         *string `json:"name"`
	ContactPhone *string `json:"contact_phone"`
	Password     *string `json:"password"`
	Role         *string `json:"role"`
	AddressID    *uint   `json:"address_id"`
}

// UpdateUser applies a partial profile update.
func UpdateUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var input updateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.ContactPhone != nil {
		user.ContactPhone = *input.ContactPhone
	}
	if input.Password != nil {
		hashed, hashErr := hashPassword(*input.Password)
		if hashErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
			return
		}
		user.Password = hashed
	}
	if input.Role != nil {
		user.Role = models.ParseRole(*input.Role)
	}
	if input.AddressID != nil {
		user.AddressID = input.AddressID
	}

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update user: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUser removes a verified user (admin only).
func DeleteUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	res := config.DB.Delete(&models.User{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
