package routes

import (
	"casar_em_carneiros/internal/adapter/http/handlers"
	"casar_em_carneiros/internal/adapter/http/middleware"
	"casar_em_carneiros/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathUsers = "/users"
	PathAuth  = "/auth"
)

// Account management is admin only.
func addUserRoutes(rg *gin.RouterGroup, authn gin.HandlerFunc, userHandler *handlers.UserHandler) {
	users := rg.Group(PathUsers, authn, middleware.RequireRole(entities.RoleAdmin))
	{
		users.POST("", userHandler.Create)
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.GetByID)
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
	}
}

func addAuthRoutes(rg *gin.RouterGroup, authn gin.HandlerFunc, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.PATCH("/email", authn, authHandler.ChangeEmail)
	}
}
