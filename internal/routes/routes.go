package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"chakula/internal/middleware"
)

// SetupRouter assembles the gin engine with all route groups.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())
	r.Use(middleware.CORS())

	AuthRoutes(r)
	AdminRoutes(r)
	OrderRoutes(r)
	RestaurantRoutes(r)
	CatalogRoutes(r)
	UserRoutes(r)

	return r
}
