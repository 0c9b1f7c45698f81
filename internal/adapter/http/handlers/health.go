package handlers

import (
	"net/http"
	"os"
	"time"

	"caretrack/internal/adapter/http/middleware"
	"caretrack/internal/core/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	StatusOk   = "ok"
	StatusDown = "down"
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Store string `json:"store"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	TaskCount         int            `json:"task_count"`
	Status            HealthServices `json:"status"`
}

type HealthHandler struct {
	taskService ports.TaskService
}

func NewHealthHandler(taskService ports.TaskService) *HealthHandler {
	return &HealthHandler{taskService: taskService}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	if _, err := h.taskService.Count(c.Request.Context()); err != nil {
		statusCode = http.StatusInternalServerError
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	storeStatus := StatusOk
	count, err := h.taskService.Count(c.Request.Context())
	if err != nil {
		zap.L().Warn("failed to count tasks for health report", zap.Error(err))
		storeStatus = StatusDown
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		TaskCount:         count,
		Status: HealthServices{
			Store: storeStatus,
		},
	})
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
