package routes

import (
	"github.com/gin-gonic/gin"

	"chakula/internal/controllers"
	"chakula/internal/middleware"
	"chakula/internal/models"
)

func AdminRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	{
		admin.POST("/create-user", controllers.AdminCreateUser)
		admin.GET("/users", controllers.ListUsers)
		admin.DELETE("/users/:id", controllers.DeleteUser)
		admin.POST("/restaurant-owners", controllers.AddRestaurantOwner)
		admin.DELETE("/restaurant-owners/:id", controllers.RemoveRestaurantOwner)
	}
}
