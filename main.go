package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"go.uber.org/zap"

	"exhibition-catalog/internal/config"
	"exhibition-catalog/internal/gemini"
	"exhibition-catalog/internal/logging"
	"exhibition-catalog/internal/repository"
	"exhibition-catalog/internal/routes"
)

func main() {
	cfg := config.New()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		var err error
		cfg, err = config.LoadFile(path)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	st := initStore(cfg, logger)
	categories := repository.NewCategories(st, logger)
	exhibits := repository.NewExhibits(st, logger)

	if os.Getenv("SEED") == "1" {
		if err := seedDefaults(categories, exhibits); err != nil {
			logger.Fatal("seed", zap.Error(err))
		}
	}

	desc := gemini.New(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, logger)
	if !desc.Configured() {
		logger.Warn("description assist not configured, fallback text will be served")
	}

	engine := routes.Register(routes.Deps{
		Categories: categories,
		Exhibits:   exhibits,
		Gemini:     desc,
		Cfg:        cfg,
		Log:        logger,
	})

	srv := &http.Server{Addr: cfg.Addr, Handler: engine}
	logger.Info("listening", zap.String("addr", cfg.Addr), zap.String("store", cfg.StoreDriver))
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
