package handler

import (
	"context"
	"fmt"
	"net/http"

	"selfcare_portal/internal/config"
	"selfcare_portal/internal/middleware"
	"selfcare_portal/internal/service"
	"selfcare_portal/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterDeps carries everything the HTTP surface needs
type RouterDeps struct {
	Auth   service.AuthService
	JWT    *utils.JWTUtil
	Routes config.RouteConfig
	Cookie CookieConfig
	Log    *zap.Logger
	// Health reports whether the backing stores answer; nil means always healthy
	Health func(ctx context.Context) error
}

// NewRouter builds the gin engine with API, pages and the route guard
func NewRouter(d RouterDeps) (*gin.Engine, error) {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	authHandler := NewAuthHandler(d.Auth, d.Cookie)
	userHandler := NewUserHandler(d.Auth)
	pageHandler, err := NewPageHandler(d.Auth, d.Cookie, d.Routes.HomePath)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.RequestLogger(log), middleware.Recovery(log))

	router.GET("/health", func(c *gin.Context) {
		if d.Health != nil {
			if err := d.Health(c.Request.Context()); err != nil {
				log.Warn("health check failed", zap.Error(err))
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	guard := middleware.RouteGuard(d.Routes, d.JWT)
	portal := router.Group("/", guard)
	pageHandler.RegisterPageRoutes(portal)

	apiGroup := portal.Group(d.Routes.APIPrefix)
	authHandler.RegisterAuthRoutes(apiGroup)
	userHandler.RegisterUserRoutes(apiGroup)

	// unknown paths are classified by the guard like any other
	router.NoRoute(guard, func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return router, nil
}
