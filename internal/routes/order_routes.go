package routes

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"chakula/internal/controllers"
	"chakula/internal/middleware"
	"chakula/internal/models"
)

func OrderRoutes(r *gin.Engine) {
	orders := r.Group("/orders")
	orders.Use(middleware.RateLimit(rate.Limit(10), 30))

	// Members place and remove orders; drivers additionally read and update
	// the ones they deliver. Owners manage restaurants, not orders.
	placing := middleware.RequireAnyRole(models.RoleAdmin, models.RoleMember)
	handling := middleware.RequireAnyRole(models.RoleAdmin, models.RoleMember, models.RoleDriver)
	{
		orders.GET("", handling, controllers.ListOrders)
		orders.GET("/:id", handling, controllers.GetOrder)
		orders.POST("", placing, controllers.CreateOrder)
		orders.PUT("/:id", handling, controllers.UpdateOrder)
		orders.DELETE("/:id", placing, controllers.DeleteOrder)

		orders.GET("/:id/status", handling, controllers.ListOrderStatus)
		orders.POST("/:id/status", handling, controllers.AddOrderStatus)
	}
}
