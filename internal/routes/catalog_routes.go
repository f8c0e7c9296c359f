package routes

import (
	"github.com/gin-gonic/gin"

	"chakula/internal/controllers"
	"chakula/internal/middleware"
	"chakula/internal/models"
)

func CatalogRoutes(r *gin.Engine) {
	// Reference data is readable by anyone.
	r.GET("/states", controllers.ListStates)
	r.GET("/states/:id", controllers.GetState)
	r.GET("/cities", controllers.ListCities)
	r.GET("/cities/:id", controllers.GetCity)
	r.GET("/categories", controllers.ListCategories)
	r.GET("/statuses", controllers.ListStatusCatalog)

	manage := r.Group("/")
	manage.Use(middleware.RequireRole(models.RoleAdmin))
	{
		manage.POST("/states", controllers.CreateState)
		manage.PUT("/states/:id", controllers.UpdateState)
		manage.DELETE("/states/:id", controllers.DeleteState)

		manage.POST("/cities", controllers.CreateCity)
		manage.PUT("/cities/:id", controllers.UpdateCity)
		manage.DELETE("/cities/:id", controllers.DeleteCity)

		manage.POST("/categories", controllers.CreateCategory)
		manage.PUT("/categories/:id", controllers.UpdateCategory)
		manage.DELETE("/categories/:id", controllers.DeleteCategory)

		manage.POST("/statuses", controllers.CreateStatusCatalog)
		manage.DELETE("/statuses/:id", controllers.DeleteStatusCatalog)
	}
}
