package main

import (
	"caretrack/pkg/translator"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	aiadapter "caretrack/internal/adapter/ai"
	httpadapter "caretrack/internal/adapter/http"
	"caretrack/internal/adapter/http/handlers"
	httpmiddleware "caretrack/internal/adapter/http/middleware"
	"caretrack/internal/adapter/store"
	appservice "caretrack/internal/app/service"
	"caretrack/internal/config"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()

	taskStore := store.NewTaskStore()
	if tasks, err := store.LoadSeedFile(cfg.SeedFile); err != nil {
		logger.Warn("starting with an empty collection", zap.String("seed_file", cfg.SeedFile), zap.Error(err))
	} else {
		taskStore.Load(tasks)
		logger.Info("seed data loaded", zap.Int("tasks", len(tasks)))
	}

	taskService := appservice.NewTaskService(taskStore)
	summarizer := aiadapter.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.RequestLogger(logger))
	r.Use(cors.Default())
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(taskService)
	taskHandler := handlers.NewTaskHandler(taskService)
	aiHandler := handlers.NewAIHandler(summarizer)
	aiLimiter := rate.NewLimiter(rate.Limit(float64(cfg.AIRatePerMin)/60), cfg.AIRatePerMin)
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler, aiHandler, aiLimiter)

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
