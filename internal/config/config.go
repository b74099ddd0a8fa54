// Package config loads application configuration from file and environment
// and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store      StoreConfig      `yaml:"store" mapstructure:"store"`
	Scoring    ScoringConfig    `yaml:"scoring" mapstructure:"scoring"`
	Similarity SimilarityConfig `yaml:"similarity" mapstructure:"similarity"`
	Badges     BadgeConfig      `yaml:"badges" mapstructure:"badges"`
	Reputation ReputationConfig `yaml:"reputation" mapstructure:"reputation"`
	Batch      BatchConfig      `yaml:"batch" mapstructure:"batch"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the reputation store backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	Path        string `yaml:"path" mapstructure:"path"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	MaxConns    int32  `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns    int32  `yaml:"min_conns" mapstructure:"min_conns"`
}

// ScoringConfig holds the factor weights.
type ScoringConfig struct {
	Premium        float64 `yaml:"premium" mapstructure:"premium"`
	Rate           float64 `yaml:"rate" mapstructure:"rate"`
	Benefits       float64 `yaml:"benefits" mapstructure:"benefits"`
	Exclusions     float64 `yaml:"exclusions" mapstructure:"exclusions"`
	Warranties     float64 `yaml:"warranties" mapstructure:"warranties"`
	Extensions     float64 `yaml:"extensions" mapstructure:"extensions"`
	Subjectivities float64 `yaml:"subjectivities" mapstructure:"subjectivities"`
	Reputation     float64 `yaml:"reputation" mapstructure:"reputation"`
}

// SimilarityConfig holds the clause-matching thresholds.
type SimilarityConfig struct {
	Threshold               float64 `yaml:"threshold" mapstructure:"threshold"`
	SubjectivitiesThreshold float64 `yaml:"subjectivities_threshold" mapstructure:"subjectivities_threshold"`
	ResolverThreshold       float64 `yaml:"resolver_threshold" mapstructure:"resolver_threshold"`
}

// BadgeConfig holds the recommendation badge cutoffs.
type BadgeConfig struct {
	RecommendedCutoff float64 `yaml:"recommended_cutoff" mapstructure:"recommended_cutoff"`
	GoodOptionCutoff  float64 `yaml:"good_option_cutoff" mapstructure:"good_option_cutoff"`
}

// ReputationConfig holds the fallback for providers without a stored record.
type ReputationConfig struct {
	DefaultScore float64 `yaml:"default_score" mapstructure:"default_score"`
	DefaultTier  string  `yaml:"default_tier" mapstructure:"default_tier"`
}

// BatchConfig configures concurrent processing of multiple quote files.
type BatchConfig struct {
	MaxConcurrentFiles int `yaml:"max_concurrent_files" mapstructure:"max_concurrent_files"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("QUOTES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "reputation.db")
	v.SetDefault("store.max_conns", 4)
	v.SetDefault("store.min_conns", 1)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("batch.max_concurrent_files", 4)
	v.SetDefault("scoring.premium", 0.25)
	v.SetDefault("scoring.rate", 0.20)
	v.SetDefault("scoring.benefits", 0.10)
	v.SetDefault("scoring.exclusions", 0.05)
	v.SetDefault("scoring.warranties", 0.04)
	v.SetDefault("scoring.extensions", 0.04)
	v.SetDefault("scoring.subjectivities", 0.02)
	v.SetDefault("scoring.reputation", 0.30)
	v.SetDefault("similarity.threshold", 0.80)
	v.SetDefault("similarity.subjectivities_threshold", 0.75)
	v.SetDefault("similarity.resolver_threshold", 0.6)
	v.SetDefault("badges.recommended_cutoff", 85.0)
	v.SetDefault("badges.good_option_cutoff", 80.0)
	v.SetDefault("reputation.default_score", 0.75)
	v.SetDefault("reputation.default_tier", "Standard")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
