package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kroogliy/maitsevcatering-sub000/auth"
)

// SetupAuthRoutes registers the public session endpoints.
func SetupAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/guest", auth.CreateGuestSession()) // POST /auth/guest
	}
}
