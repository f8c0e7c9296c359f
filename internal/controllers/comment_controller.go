package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chakula/internal/config"
	"chakula/internal/middleware"
	"chakula/internal/models"
)

// CreateComment attaches a comment to an order. The author is the
// authenticated user.
func CreateComment(c *gin.Context) {
	var input struct {
		OrderID     uint   `json:"order_id" binding:"required"`
		CommentText string `json:"comment_text" binding:"required"`
		CommentType string `json:"comment_type"`
		Rating      *int   `json:"rating"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5."})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, input.OrderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	comment := models.Comment{
		OrderID:     order.ID,
		UserID:      middleware.UserID(c),
		CommentText: input.CommentText,
		CommentType: models.ParseCommentType(input.CommentType),
		Rating:      input.Rating,
	}
	if err := config.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create comment: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// ListComments lists comments, optionally per order.
func ListComments(c *gin.Context) {
	query := config.DB.Preload("User")
	if orderID := c.Query("order_id"); orderID != "" {
		query = query.Where("order_id = ?", orderID)
	}

	var comments []models.Comment
	if err := query.Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch comments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": comments})
}

// UpdateComment modifies a comment's text, type or rating.
func UpdateComment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var comment models.Comment
	if err := config.DB.First(&comment, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	var input struct {
		CommentText *string `json:"comment_text"`
		CommentType *string `json:"comment_type"`
		Rating      *int    `json:"rating"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.CommentText != nil {
		comment.CommentText = *input.CommentText
	}
	if input.CommentType != nil {
		comment.CommentType = models.ParseCommentType(*input.CommentType)
	}
	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5."})
			return
		}
		comment.Rating = input.Rating
	}

	if err := config.DB.Save(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update comment: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// DeleteComment removes a comment by ID.
func DeleteComment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	res := config.DB.Delete(&models.Comment{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
