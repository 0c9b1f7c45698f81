package http

import (
	"caretrack/internal/adapter/http/handlers"
	"caretrack/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
	aiHandler *handlers.AIHandler,
	aiLimiter *rate.Limiter,
) {
	health := r.Group("/health", middleware.LanguageMiddleware())
	{
		health.GET("", healthHandler.CheckHealth)
		health.GET("/report", healthHandler.CheckHealthReport)
	}

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/tasks", taskHandler.ListTasks)
		api.GET("/tasks/filter/:field/:value", taskHandler.FilterTasks)
		api.GET("/tasks/:id", taskHandler.GetTask)
		api.POST("/tasks", taskHandler.CreateTask)
		api.PUT("/tasks/:id", taskHandler.UpdateTask)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)

		ai := api.Group("/ai")
		ai.Use(middleware.RateLimitMiddleware(aiLimiter))
		{
			ai.POST("/summarize", aiHandler.Summarize)
			ai.POST("/infer", aiHandler.InferTask)
		}
	}
}
