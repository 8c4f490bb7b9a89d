package v1

import (
	"cleanresponse/internal/api/v1/users"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures API v1 routes.
//
// The users resource is only mounted when store is non-nil.
func SetupRoutes(routerGroup *gin.RouterGroup, store users.Store, production bool) {
	if store == nil {
		return
	}

	usersHandler := users.NewHandler(store, production)

	// Users management
	usersGroup := routerGroup.Group("/users")
	{
		usersGroup.GET("", usersHandler.List)
		usersGroup.POST("", usersHandler.Create)
		usersGroup.GET("/:id", usersHandler.Get)
		usersGroup.DELETE("/:id", usersHandler.Delete)
	}
}
