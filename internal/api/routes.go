package api

import (
	"net/http"

	"cleanresponse/internal/api/types"
	v1 "cleanresponse/internal/api/v1"
	"cleanresponse/internal/api/v1/users"
	"cleanresponse/pkg/response"

	"github.com/gin-gonic/gin"
)

// setupRoutes configures API routes.
func (s *Server) setupRoutes() {
	// Interfaces stay nil when no storage is configured
	var db Pinger
	var store users.Store
	if s.storage != nil {
		db = s.storage
		store = s.storage
	}
	baseHandler := NewHandler(db)

	apiGroup := s.router.Group("/api")

	// Base endpoints
	apiGroup.GET("/ping", baseHandler.Ping)
	apiGroup.GET("/health", baseHandler.Health)

	// API v1 routes
	v1.SetupRoutes(apiGroup.Group("/v1"), store, s.production)

	s.router.NoRoute(func(c *gin.Context) {
		types.AbortWithError(c, response.NotFound("Route", types.Options(c)...))
	})
	s.router.HandleMethodNotAllowed = true
	s.router.NoMethod(func(c *gin.Context) {
		types.AbortWithError(c, response.Error("Method not allowed", http.StatusMethodNotAllowed, types.Options(c)...))
	})
}
