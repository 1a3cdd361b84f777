package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"publisher-backend/internal/shared/middleware"
	"publisher-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))

	medias := router.Group("/medias")
	{
		medias.POST("", c.MediaHandler.Create)
		medias.GET("", c.MediaHandler.FindAll)
		medias.GET("/:id", c.MediaHandler.FindOne)
		medias.PUT("/:id", c.MediaHandler.Update)
		medias.DELETE("/:id", c.MediaHandler.Remove)
	}

	posts := router.Group("/posts")
	{
		posts.POST("", c.PostHandler.Create)
		posts.GET("", c.PostHandler.FindAll)
		posts.GET("/:id", c.PostHandler.FindOne)
		posts.PUT("/:id", c.PostHandler.Update)
		posts.DELETE("/:id", c.PostHandler.Remove)
	}

	publications := router.Group("/publications")
	{
		publications.POST("", c.PublicationHandler.Create)
		publications.GET("", c.PublicationHandler.FindAll)
		publications.GET("/:id", c.PublicationHandler.FindOne)
		publications.PATCH("/:id", c.PublicationHandler.Update)
		publications.DELETE("/:id", c.PublicationHandler.Remove)
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
		})
	}
}
