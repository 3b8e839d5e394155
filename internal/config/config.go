// Package config loads service settings from defaults, an optional YAML
// file and environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

const (
	keyPort             = "port"
	keyDBURL            = "db_url"
	keyRecipeAPIURL     = "recipe_api_url"
	keyRecipeAPIKey     = "recipe_api_key"
	keyRecipeAPITimeout = "recipe_api_timeout"
	keyMergeThreshold   = "merge_threshold"
	keyDefaultServings  = "default_servings"
	keyLogLevel         = "log_level"

	// ConfigEnv names an explicit config file path.
	ConfigEnv = "FORKIFY_CONFIG"
)

type Config struct {
	Port             string
	DBURL            string
	RecipeAPIURL     string
	RecipeAPIKey     string
	RecipeAPITimeout time.Duration
	MergeThreshold   float64
	DefaultServings  int
	LogLevel         string
}

// Load reads forkify.yaml from the working directory (or the file named by
// FORKIFY_CONFIG) if present, then applies environment overrides such as
// PORT and DB_URL. A missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault(keyPort, "8080")
	v.SetDefault(keyRecipeAPIURL, "https://www.food2fork.com/api")
	v.SetDefault(keyRecipeAPITimeout, 30*time.Second)
	v.SetDefault(keyMergeThreshold, 0.8)
	v.SetDefault(keyDefaultServings, 4)
	v.SetDefault(keyLogLevel, "info")

	// Every key must be known to viper for AutomaticEnv to pick it up.
	v.SetDefault(keyDBURL, "")
	v.SetDefault(keyRecipeAPIKey, "")
	v.AutomaticEnv()

	if path := os.Getenv(ConfigEnv); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("forkify")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Port:             v.GetString(keyPort),
		DBURL:            v.GetString(keyDBURL),
		RecipeAPIURL:     v.GetString(keyRecipeAPIURL),
		RecipeAPIKey:     v.GetString(keyRecipeAPIKey),
		RecipeAPITimeout: v.GetDuration(keyRecipeAPITimeout),
		MergeThreshold:   v.GetFloat64(keyMergeThreshold),
		DefaultServings:  v.GetInt(keyDefaultServings),
		LogLevel:         v.GetString(keyLogLevel),
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.MergeThreshold < 0 || c.MergeThreshold > 1 {
		return fmt.Errorf("merge_threshold must be within [0, 1], got %v", c.MergeThreshold)
	}
	if c.DefaultServings < 1 {
		return fmt.Errorf("default_servings must be at least 1, got %d", c.DefaultServings)
	}
	if c.RecipeAPIURL == "" {
		return errors.New("recipe_api_url is required")
	}
	return nil
}

// RequireDB reports an error when no database URL is configured.
func (c Config) RequireDB() error {
	if c.DBURL == "" {
		return errors.New("DB_URL is required")
	}
	return nil
}
