package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Analysis Config
	AnalysisDelay  time.Duration `env:"ANALYSIS_DELAY" envDefault:"2500ms"`
	RandomSeed     uint64        `env:"RANDOM_SEED" envDefault:"0"`
	LocationJitter bool          `env:"LOCATION_JITTER" envDefault:"true"`
	WeatherTagging bool          `env:"WEATHER_TAGGING" envDefault:"true"`
	DefaultAddress string        `env:"DEFAULT_ADDRESS" envDefault:"123 Main Street, Downtown"`
	DefaultLat     float64       `env:"DEFAULT_LAT" envDefault:"40.7128"`
	DefaultLng     float64       `env:"DEFAULT_LNG" envDefault:"-74.0060"`

	// Dataset Config
	FixturesPath string `env:"FIXTURES_PATH"`

	// Upload Config
	MaxUploadMB int `env:"MAX_UPLOAD_MB" envDefault:"10"`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		AnalysisDelay:  getEnvAsDuration("ANALYSIS_DELAY", 2500*time.Millisecond),
		RandomSeed:     getEnvAsUint64("RANDOM_SEED", 0),
		LocationJitter: getEnvAsBool("LOCATION_JITTER", true),
		WeatherTagging: getEnvAsBool("WEATHER_TAGGING", true),
		DefaultAddress: getEnv("DEFAULT_ADDRESS", "123 Main Street, Downtown"),
		DefaultLat:     getEnvAsFloat("DEFAULT_LAT", 40.7128),
		DefaultLng:     getEnvAsFloat("DEFAULT_LNG", -74.0060),
		FixturesPath:   os.Getenv("FIXTURES_PATH"),
		MaxUploadMB:    getEnvAsInt("MAX_UPLOAD_MB", 10),
		MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения, которые нельзя исправить значением по умолчанию
func (c *Config) Validate() error {
	if c.AnalysisDelay < 0 {
		return fmt.Errorf("ANALYSIS_DELAY must not be negative, got %s", c.AnalysisDelay)
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive, got %d", c.MaxUploadMB)
	}
	if c.DefaultLat < -90 || c.DefaultLat > 90 || c.DefaultLng < -180 || c.DefaultLng > 180 {
		return fmt.Errorf("default coordinates out of range: %f, %f", c.DefaultLat, c.DefaultLng)
	}
	return nil
}

// MaxUploadBytes возвращает лимит загрузки в байтах
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseUint(value, 10, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
