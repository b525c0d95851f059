package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения.
// Все политики скоринга и радиусов заданы явно, без глобальных синглтонов
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS" envDefault:"10"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass     string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Routing provider (внешний провайдер маршрутов)
	RoutingAPIURL  string        `env:"ROUTING_API_URL"`
	RoutingAPIKey  string        `env:"ROUTING_API_KEY"`
	RoutingTimeout time.Duration `env:"ROUTING_TIMEOUT" envDefault:"5s"`

	// MET provider (официальные метеопредупреждения)
	MetAPIURL  string        `env:"MET_API_URL"`
	MetAPIKey  string        `env:"MET_GOV_KEY"`
	MetTimeout time.Duration `env:"MET_TIMEOUT" envDefault:"5s"`

	// Политика скоринга риска
	UrgencyWeight float64 `env:"RISK_URGENCY_WEIGHT" envDefault:"0.6"`
	WarningWeight float64 `env:"RISK_WARNING_WEIGHT" envDefault:"0.4"`

	// Радиусы опасных зон по уровням риска (в метрах)
	RadiusLowM      int `env:"HAZARD_RADIUS_LOW" envDefault:"1500"`
	RadiusModerateM int `env:"HAZARD_RADIUS_MEDIUM" envDefault:"3000"`
	RadiusHighM     int `env:"HAZARD_RADIUS_HIGH" envDefault:"6000"`
	RadiusCriticalM int `env:"HAZARD_RADIUS_CRITICAL" envDefault:"10000"`

	// Индекс опасных зон: окно свежести и потолок количества зон
	HazardFreshness time.Duration `env:"HAZARD_FRESHNESS_WINDOW" envDefault:"12h"`
	MaxHazardZones  int           `env:"HAZARD_MAX_ZONES" envDefault:"24"`

	// Максимум альтернативных маршрутов в ответе
	MaxAlternatives int `env:"ROUTE_MAX_ALTERNATIVES" envDefault:"3"`

	// Очередь скоринга
	ScoreMaxRetries int           `env:"SCORE_MAX_RETRIES" envDefault:"3"`
	ScoreBaseDelay  time.Duration `env:"SCORE_BASE_DELAY" envDefault:"2s"`

	// TTL кэша и окно статистики
	CacheTTL               time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	StatsTimeWindowMinutes int           `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		DBMaxConns:             int32(getEnvAsInt("DB_MAX_CONNS", 10)),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		RedisPoolSize:          getEnvAsInt("REDIS_POOL_SIZE", 10),
		RoutingAPIURL:          getEnv("ROUTING_API_URL", "https://routes.googleapis.com/directions/v2:computeRoutes"),
		RoutingAPIKey:          os.Getenv("ROUTING_API_KEY"),
		RoutingTimeout:         getEnvAsDuration("ROUTING_TIMEOUT", 5*time.Second),
		MetAPIURL:              getEnv("MET_API_URL", "https://api.met.gov.my/v2.1"),
		MetAPIKey:              os.Getenv("MET_GOV_KEY"),
		MetTimeout:             getEnvAsDuration("MET_TIMEOUT", 5*time.Second),
		UrgencyWeight:          getEnvAsFloat("RISK_URGENCY_WEIGHT", 0.6),
		WarningWeight:          getEnvAsFloat("RISK_WARNING_WEIGHT", 0.4),
		RadiusLowM:             getEnvAsInt("HAZARD_RADIUS_LOW", 1500),
		RadiusModerateM:        getEnvAsInt("HAZARD_RADIUS_MEDIUM", 3000),
		RadiusHighM:            getEnvAsInt("HAZARD_RADIUS_HIGH", 6000),
		RadiusCriticalM:        getEnvAsInt("HAZARD_RADIUS_CRITICAL", 10000),
		HazardFreshness:        getEnvAsDuration("HAZARD_FRESHNESS_WINDOW", 12*time.Hour),
		MaxHazardZones:         getEnvAsInt("HAZARD_MAX_ZONES", 24),
		MaxAlternatives:        getEnvAsInt("ROUTE_MAX_ALTERNATIVES", 3),
		ScoreMaxRetries:        getEnvAsInt("SCORE_MAX_RETRIES", 3),
		ScoreBaseDelay:         getEnvAsDuration("SCORE_BASE_DELAY", 2*time.Second),
		CacheTTL:               getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if cfg.UrgencyWeight < 0 || cfg.WarningWeight < 0 {
		return nil, fmt.Errorf("risk weights must be non-negative")
	}

	return cfg, nil
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

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
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
