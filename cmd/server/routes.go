package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"card-admin.backend/internal/interfaces/http/handlers"
	"card-admin.backend/internal/interfaces/http/middleware"
	"card-admin.backend/pkg/jwt"
)

type routeDeps struct {
	authHandler        *handlers.AuthHandler
	keyHandler         *handlers.KeyHandler
	logHandler         *handlers.LogHandler
	cardHandler        *handlers.LiveCardHandler
	jwtService         *jwt.JWTService
	idempotencyEnabled bool
}

func newRouter(d routeDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	registerHealthRoute(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	registerAPIV1Routes(r, d)
	return r
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	authRequired := middleware.AuthMiddleware(d.jwtService)

	// Credit mutations honor Idempotency-Key when redis is configured
	mutation := func(c *gin.Context) { c.Next() }
	if d.idempotencyEnabled {
		mutation = middleware.IdempotencyMiddleware()
	}

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/me", authRequired, d.authHandler.Me)
		}

		// Operator management (admin only)
		users := v1.Group("/users")
		users.Use(authRequired, middleware.RequireAdmin())
		{
			users.POST("", d.authHandler.CreateUser)
			users.GET("", d.authHandler.ListUsers)
		}

		keys := v1.Group("/keys")
		keys.Use(authRequired)
		{
			keys.POST("", d.keyHandler.Create)
			keys.GET("", d.keyHandler.List)
			keys.GET("/:id", d.keyHandler.Get)
			keys.POST("/:id/deactivate", d.keyHandler.Deactivate)
			keys.POST("/:id/reactivate", d.keyHandler.Reactivate)
			keys.DELETE("/:id", middleware.RequireAdmin(), d.keyHandler.Delete)
			keys.POST("/:id/credits/add", mutation, d.keyHandler.AddCredits)
			keys.POST("/:id/credits/deduct", mutation, d.keyHandler.DeductCredits)
		}

		// Consumption path: the key itself is the credential
		v1.POST("/consume", mutation, d.keyHandler.Consume)

		logs := v1.Group("/logs")
		logs.Use(authRequired)
		{
			logs.GET("", d.logHandler.Recent)
		}

		cards := v1.Group("/cards")
		cards.Use(authRequired)
		{
			cards.GET("", d.cardHandler.List)
			cards.POST("", d.cardHandler.Create)
		}
	}
}
