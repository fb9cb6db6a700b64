package main

import (
	"context"
	"log"
	"os"

	"github.com/yukimo/studytrack.git/internal/client"
	"github.com/yukimo/studytrack.git/internal/config"
	"github.com/yukimo/studytrack.git/internal/service"
	"github.com/yukimo/studytrack.git/internal/settings"
	"github.com/yukimo/studytrack.git/internal/storage/cache"
	"github.com/yukimo/studytrack.git/internal/storage/localdb"
	"github.com/yukimo/studytrack.git/internal/timer"
	"github.com/yukimo/studytrack.git/internal/ui"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	db, err := localdb.InitDB(cfg.Storage)
	if err != nil {
		logger.Fatal("failed init local db", zap.Error(err))
	}
	defer db.Close()

	store := localdb.NewStore(db)
	tokens := localdb.NewTokens(store)

	api := client.New(cfg.API, tokens, logger)

	subjects := cache.NewSubjects()
	services := service.InitServices(api, subjects, logger)

	prefs := settings.NewStore(store, logger)
	ctx := context.Background()
	prefs.Load(ctx)
	if cfg.UI.Theme != "" {
		if err := prefs.Set(ctx, settings.KeyGlobalTheme, cfg.UI.Theme); err != nil {
			logger.Warn("failed apply configured theme", zap.Error(err))
		}
	}

	sessionTimer := timer.New(store, logger)

	app := ui.NewApp(services, sessionTimer, prefs, api, subjects, logger, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		logger.Fatal("app loop failed", zap.Error(err))
	}
}
