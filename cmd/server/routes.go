package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"streaming-service.backend/internal/interfaces/http/handlers"
	"streaming-service.backend/internal/interfaces/http/middleware"
	"streaming-service.backend/internal/usecases"
	"streaming-service.backend/pkg/metrics"
)

const (
	serviceName    = "streaming-service-backend"
	serviceVersion = "0.1.0"
)

type routeDeps struct {
	reportHandler  *handlers.ReportHandler
	adminHandler   *handlers.AdminHandler
	authMiddleware gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, "+middleware.IdempotencyHeader+", "+middleware.RequestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
			"version": serviceVersion,
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		reports := v1.Group("/reports")
		{
			for _, name := range usecases.StaticReports {
				reports.GET("/"+name, d.reportHandler.Report(name))
			}
			reports.GET("/users-by-subscription/:type", d.reportHandler.UsersBySubscription)
		}

		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.PUT("/users/:id/subscription", d.adminHandler.UpdateSubscription)
			admin.POST("/reviews/table", d.adminHandler.CreateReviewsTable)
			admin.POST("/reviews", middleware.IdempotencyMiddleware(), d.adminHandler.InsertReviews)
			admin.POST("/seed", middleware.IdempotencyMiddleware(), d.adminHandler.Seed)
			admin.POST("/truncate", d.adminHandler.Truncate)
			admin.GET("/seed-runs", d.adminHandler.ListSeedRuns)
		}
	}
}
