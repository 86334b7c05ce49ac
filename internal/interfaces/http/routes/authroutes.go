package routes

import (
	"github.com/gin-gonic/gin"

	userusecases "ticketdesk/internal/application/user/usecases"
	"ticketdesk/internal/domain/user"
	authhandler "ticketdesk/internal/interfaces/http/handlers/auth"
	"ticketdesk/internal/interfaces/http/middleware"
)

// RegisterAuthRoutes wires registration, login, logout, and the
// current-user route. Only /users/me requires a valid session; logout just
// clears the cookie, so an expired session can still log out.
func RegisterAuthRoutes(
	api *gin.RouterGroup,
	handler *authhandler.Handler,
	verifier userusecases.TokenVerifier,
	userRepo user.Repository,
	authLimiter gin.HandlerFunc,
) {
	if authLimiter != nil {
		api.POST("/register", authLimiter, handler.Register)
		api.POST("/login", authLimiter, handler.Login)
	} else {
		api.POST("/register", handler.Register)
		api.POST("/login", handler.Login)
	}

	api.GET("/logout", handler.Logout)
	api.GET("/users/me", middleware.RequireAuth(verifier, userRepo), handler.Me)
}
