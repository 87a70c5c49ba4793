package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"financial-health/internal/benchmark"
	"financial-health/internal/forecast"
	"financial-health/internal/policy"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	// Optional: load industry benchmarks from a separate YAML (e.g. configs/benchmarks.yaml).
	// Entries overlay the built-in table.
	BenchmarksFile string            `yaml:"benchmarks_file"`
	Forecast       ForecastConfig    `yaml:"forecast"`
	Derivation     policy.Derivation `yaml:"derivation"`
	Storage        StorageConfig     `yaml:"storage"`
	Upload         UploadConfig      `yaml:"upload"`
	Report         ReportConfig      `yaml:"report"`

	benchmarks *benchmark.Table
}

type ServerConfig struct {
	Port        string   `yaml:"port" validate:"required,numeric"`
	Env         string   `yaml:"env" validate:"oneof=development production test"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error fatal"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

type ForecastConfig struct {
	GrowthRate    float64 `yaml:"growth_rate" validate:"gt=-1,lte=1"`
	HorizonMonths int     `yaml:"horizon_months" validate:"gte=1,lte=120"`
}

type StorageConfig struct {
	Driver      string `yaml:"driver" validate:"oneof=memory postgres"`
	DatabaseURL string `yaml:"database_url" validate:"required_if=Driver postgres"`
}

type UploadConfig struct {
	MaxBytes          int64         `yaml:"max_bytes" validate:"gt=0"`
	ExtractionTimeout time.Duration `yaml:"extraction_timeout" validate:"gt=0"`
	CacheTTL          time.Duration `yaml:"cache_ttl" validate:"gte=0"`
	RawTextLimit      int           `yaml:"raw_text_limit" validate:"gt=0"`
	// Uploads per second across all clients; 0 disables throttling.
	RateLimit         float64       `yaml:"rate_limit" validate:"gte=0"`
	RateBurst         int           `yaml:"rate_burst" validate:"gte=0"`
}

type ReportConfig struct {
	// TTF font used for non-Latin report labels; empty renders English labels.
	UnicodeFont string `yaml:"unicode_font" validate:"omitempty,file"`
}

// Default returns a configuration that runs without any file.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080", Env: "development", CORSOrigins: []string{"*"}},
		Log:    LogConfig{Level: "info", Format: "console"},
		Forecast: ForecastConfig{
			GrowthRate:    forecast.DefaultGrowthRate,
			HorizonMonths: forecast.DefaultHorizon,
		},
		Derivation: policy.Default(),
		Storage:    StorageConfig{Driver: "memory"},
		Upload: UploadConfig{
			MaxBytes:          10 << 20,
			ExtractionTimeout: 30 * time.Second,
			CacheTTL:          time.Hour,
			RawTextLimit:      500,
			RateBurst:         5,
		},
	}
}

// Load reads path (if non-empty) over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(raw, c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := c.ApplyEnv(); err != nil {
		return nil, err
	}

	// If benchmarks_file is set, load it over the built-in table.
	if c.BenchmarksFile != "" {
		benchPath := c.BenchmarksFile
		if !filepath.IsAbs(benchPath) && path != "" {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), benchPath)
			if _, err := os.Stat(cand); err == nil {
				benchPath = cand
			}
		}
		t, err := benchmark.LoadFile(benchPath)
		if err != nil {
			return nil, fmt.Errorf("benchmarks_file: %w", err)
		}
		c.benchmarks = t
	}
	return c, nil
}

// LoadDotEnv loads a .env file into the process environment when present.
// Variables already set are not overwritten.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// ApplyEnv overlays API_PORT, API_ENV, LOG_LEVEL, STORAGE_DRIVER, DATABASE_URL,
// UPLOAD_MAX_BYTES and REPORT_FONT.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("API_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("API_ENV"); v != "" {
		c.Server.Env = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		c.Storage.Driver = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Storage.DatabaseURL = v
		if os.Getenv("STORAGE_DRIVER") == "" {
			c.Storage.Driver = "postgres"
		}
	}
	if v := os.Getenv("REPORT_FONT"); v != "" {
		c.Report.UnicodeFont = v
	}
	if v := os.Getenv("UPLOAD_MAX_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("UPLOAD_MAX_BYTES: %w", err)
		}
		c.Upload.MaxBytes = n
	}
	return nil
}

var validate = validator.New()

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config invalid: %w", err)
	}
	if err := c.Derivation.Validate(); err != nil {
		return fmt.Errorf("derivation config invalid: %w", err)
	}
	return nil
}

// Benchmarks returns the table loaded from benchmarks_file, or the built-in one.
func (c *Config) Benchmarks() *benchmark.Table {
	if c.benchmarks == nil {
		return benchmark.Default()
	}
	return c.benchmarks
}

// Production reports whether the server runs in production mode.
func (c *Config) Production() bool { return c.Server.Env == "production" }
