package routes

import (
	"github.com/gin-gonic/gin"

	"chakula/internal/controllers"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.RegisterUser)
		auth.POST("/login", controllers.LoginUser)
		auth.POST("/verify-email", controllers.VerifyEmail)
		auth.POST("/resend-code", controllers.ResendCode)
		auth.POST("/request-reset", controllers.RequestPasswordReset)
		auth.POST("/reset-password", controllers.ResetPassword)
	}
}
