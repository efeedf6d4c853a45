package main

import (
	"context"
	"net/http"
	"time"

	"bookshelf-graphql/internal/shared/middleware"
	"bookshelf-graphql/internal/shared/response"
	"bookshelf-graphql/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.Logger(),
	)

	path := c.Config.GraphQL.Path
	if c.Config.IsProduction() {
		router.POST(path, c.GraphQLHandler.Post)
		router.GET(path, c.GraphQLHandler.Get)
	} else {
		c.GraphQLHandler.Register(router, path)
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))
	}

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "route not found")
	})

	return router
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		services, err := appCtx.HealthCheck(ctx)
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  services,
		}

		if err != nil {
			health["status"] = "degraded"
			response.ServiceUnavailable(c, "store is unavailable", health)
			return
		}
		response.Success(c, http.StatusOK, health)
	}
}
