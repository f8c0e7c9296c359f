package routes

import (
	"github.com/gin-gonic/gin"

	"chakula/internal/controllers"
	"chakula/internal/middleware"
)

func UserRoutes(r *gin.Engine) {
	users := r.Group("/")
	users.Use(middleware.RequireAuth())
	{
		users.GET("/users/:id", controllers.GetUser)
		users.PUT("/users/:id", controllers.UpdateUser)

		users.POST("/addresses", controllers.CreateAddress)
		users.GET("/addresses", controllers.ListAddresses)
		users.GET("/addresses/:id", controllers.GetAddress)
		users.PUT("/addresses/:id", controllers.UpdateAddress)
		users.DELETE("/addresses/:id", controllers.DeleteAddress)

		users.POST("/drivers", controllers.CreateDriver)
		users.GET("/drivers", controllers.ListDrivers)
		users.GET("/drivers/:id", controllers.GetDriver)
		users.PUT("/drivers/:id", controllers.UpdateDriver)
		users.DELETE("/drivers/:id", controllers.DeleteDriver)

		users.POST("/comments", controllers.CreateComment)
		users.GET("/comments", controllers.ListComments)
		users.PUT("/comments/:id", controllers.UpdateComment)
		users.DELETE("/comments/:id", controllers.DeleteComment)
	}
}
