package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/lataewar/forkify/internal/api"
	"github.com/lataewar/forkify/internal/config"
	"github.com/lataewar/forkify/internal/db"
	"github.com/lataewar/forkify/internal/logging"
	"github.com/lataewar/forkify/internal/recipeapi"
	"github.com/lataewar/forkify/internal/service"
	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	if err := cfg.RequireDB(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	sqlDB, err := sql.Open("postgres", cfg.DBURL)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.Migrate(sqlDB); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	recipes := recipeapi.New(recipeapi.Options{
		BaseURL: cfg.RecipeAPIURL,
		Key:     cfg.RecipeAPIKey,
		Timeout: cfg.RecipeAPITimeout,
	})
	svc := service.New(db.New(sqlDB), sqlDB, recipes, service.Options{
		MergeThreshold:  cfg.MergeThreshold,
		DefaultServings: cfg.DefaultServings,
	})
	handler := api.NewRouter(svc)

	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("forkify listening", "addr", addr, "recipe_api", cfg.RecipeAPIURL)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
