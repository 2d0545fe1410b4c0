package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// DefaultMemberIDFile - файл, в котором сохраняется сгенерированный MEMBER_ID
const DefaultMemberIDFile = ".igloo_member"

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`

	// Postgres pool
	DBMaxConns        int32         `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMinConns        int32         `env:"DB_MIN_CONNS" envDefault:"2"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`

	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	// Family / instance
	MemberID     string `env:"MEMBER_ID"`
	MemberIDFile string `env:"MEMBER_ID_FILE" envDefault:".igloo_member"`
	MemberName   string `env:"MEMBER_NAME" envDefault:"YOU"`
	FamilyID     string `env:"FAMILY_ID" envDefault:"POLAR-1337"`
	FamilyName   string `env:"FAMILY_NAME" envDefault:"My Igloo"`

	// Sync bus
	BusDriver        string `env:"BUS_DRIVER" envDefault:"redis"`
	BusChannelPrefix string `env:"BUS_CHANNEL_PREFIX" envDefault:"igloo_live_sync"`

	// Positioning
	SensorDriver string        `env:"SENSOR_DRIVER" envDefault:"push"`
	FixTimeout   time.Duration `env:"FIX_TIMEOUT" envDefault:"15s"`
	FixMaxAge    time.Duration `env:"FIX_MAX_AGE" envDefault:"0s"`

	ActivityLogCapacity int    `env:"ACTIVITY_LOG_CAPACITY" envDefault:"15"`
	MapLinkBase         string `env:"MAP_LINK_BASE" envDefault:"https://www.google.com/maps"`
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
		DBMinConns:             int32(getEnvAsInt("DB_MIN_CONNS", 2)),
		DBMaxConnIdleTime:      getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
		MemberID:               os.Getenv("MEMBER_ID"),
		MemberIDFile:           getEnv("MEMBER_ID_FILE", DefaultMemberIDFile),
		MemberName:             getEnv("MEMBER_NAME", "YOU"),
		FamilyID:               strings.ToUpper(getEnv("FAMILY_ID", "POLAR-1337")),
		FamilyName:             getEnv("FAMILY_NAME", "My Igloo"),
		BusDriver:              getEnv("BUS_DRIVER", "redis"),
		BusChannelPrefix:       getEnv("BUS_CHANNEL_PREFIX", "igloo_live_sync"),
		SensorDriver:           getEnv("SENSOR_DRIVER", "push"),
		FixTimeout:             getEnvAsDuration("FIX_TIMEOUT", 15*time.Second),
		FixMaxAge:              getEnvAsDuration("FIX_MAX_AGE", 0),
		ActivityLogCapacity:    getEnvAsInt("ACTIVITY_LOG_CAPACITY", 15),
		MapLinkBase:            getEnv("MAP_LINK_BASE", "https://www.google.com/maps"),
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

	switch cfg.BusDriver {
	case "redis", "memory":
	default:
		return nil, fmt.Errorf("unsupported BUS_DRIVER %q", cfg.BusDriver)
	}

	switch cfg.SensorDriver {
	case "push", "none":
	default:
		return nil, fmt.Errorf("unsupported SENSOR_DRIVER %q", cfg.SensorDriver)
	}

	if cfg.MemberID == "" {
		memberID, err := loadOrCreateMemberID(cfg.MemberIDFile)
		if err != nil {
			return nil, err
		}
		cfg.MemberID = memberID
	}

	if cfg.MemberID == "me" {
		return nil, fmt.Errorf("MEMBER_ID must not be the reserved local id %q", cfg.MemberID)
	}

	return cfg, nil
}

// loadOrCreateMemberID читает MEMBER_ID из файла в формате .env, а при его
// отсутствии генерирует новый id и сохраняет его. Id ключует сохраненное
// состояние, очередь вебхуков и участника в семье, поэтому он переживает рестарт.
func loadOrCreateMemberID(path string) (string, error) {
	values, err := godotenv.Read(path)
	switch {
	case err == nil:
		if id := strings.TrimSpace(values["MEMBER_ID"]); id != "" {
			return id, nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("ошибка чтения файла %s: %w", path, err)
	}

	id := uuid.NewString()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return "", fmt.Errorf("ошибка создания каталога для %s: %w", path, err)
		}
	}
	if err := godotenv.Write(map[string]string{"MEMBER_ID": id}, path); err != nil {
		return "", fmt.Errorf("ошибка сохранения MEMBER_ID в %s: %w", path, err)
	}
	return id, nil
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

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
