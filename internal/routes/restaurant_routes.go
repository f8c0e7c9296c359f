package routes

import (
	"github.com/gin-gonic/gin"

	"chakula/internal/controllers"
	"chakula/internal/middleware"
	"chakula/internal/models"
)

func RestaurantRoutes(r *gin.Engine) {
	// Browsing is public; mutations need an owner or admin session.
	r.GET("/restaurants", controllers.ListRestaurants)
	r.GET("/restaurants/:id", controllers.GetRestaurant)
	r.GET("/menu-items", controllers.ListMenuItems)
	r.GET("/menu-items/:id", controllers.GetMenuItem)

	manage := r.Group("/")
	manage.Use(middleware.RequireAnyRole(models.RoleAdmin, models.RoleOwner))
	{
		manage.POST("/restaurants", controllers.CreateRestaurant)
		manage.PUT("/restaurants/:id", controllers.UpdateRestaurant)
		manage.DELETE("/restaurants/:id", controllers.DeleteRestaurant)

		manage.POST("/menu-items", controllers.CreateMenuItem)
		manage.PUT("/menu-items/:id", controllers.UpdateMenuItem)
		manage.DELETE("/menu-items/:id", controllers.DeleteMenuItem)
	}
}
