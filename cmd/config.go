package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort   string `mapstructure:"HTTP_PORT"`
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSslMode  string `mapstructure:"DB_SSLMODE"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`

	AuthJWTSecret    string `mapstructure:"AUTH_JWT_SECRET"`
	AuthOIDCIssuer   string `mapstructure:"AUTH_OIDC_ISSUER"`
	AuthOIDCClientID string `mapstructure:"AUTH_OIDC_CLIENT_ID"`

	MenuDefaultPageSize int           `mapstructure:"MENU_DEFAULT_PAGE_SIZE"`
	MenuMaxPageSize     int           `mapstructure:"MENU_MAX_PAGE_SIZE"`
	MenuCacheTTL        time.Duration `mapstructure:"MENU_CACHE_TTL"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	KafkaHost             string `mapstructure:"KAFKA_HOST"`
	KafkaOrderEventsTopic string `mapstructure:"KAFKA_ORDER_EVENTS_TOPIC"`

	AccessPolicyFile string `mapstructure:"ACCESS_POLICY_FILE"`
	ReportSchedule   string `mapstructure:"REPORT_SCHEDULE"`
}

var defaults = map[string]any{
	"HTTP_PORT":                "8080",
	"DB_HOST":                  "localhost",
	"DB_PORT":                  "5432",
	"DB_USER":                  "",
	"DB_PASSWORD":              "",
	"DB_NAME":                  "",
	"DB_SSLMODE":               "disable",
	"LOG_LEVEL":                "info",
	"AUTH_JWT_SECRET":          "",
	"AUTH_OIDC_ISSUER":         "",
	"AUTH_OIDC_CLIENT_ID":      "",
	"MENU_DEFAULT_PAGE_SIZE":   2,
	"MENU_MAX_PAGE_SIZE":       100,
	"MENU_CACHE_TTL":           "5m",
	"REDIS_ADDR":               "",
	"REDIS_PASSWORD":           "",
	"REDIS_DB":                 0,
	"KAFKA_HOST":               "",
	"KAFKA_ORDER_EVENTS_TOPIC": "orders.events",
	"ACCESS_POLICY_FILE":       "",
	"REPORT_SCHEDULE":          "0 */5 * * * *",
}

// LoadConfig reads the process environment, after loading envFile when it
// exists. Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		// a missing .env is normal outside local development
		_ = godotenv.Load(envFile)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errList []error
	if c.HTTPPort == "" {
		errList = append(errList, errors.New("HTTP_PORT is required"))
	}
	if c.DBName == "" {
		errList = append(errList, errors.New("DB_NAME is required"))
	}
	if c.MenuDefaultPageSize <= 0 {
		errList = append(errList, errors.New("MENU_DEFAULT_PAGE_SIZE must be positive"))
	}
	if c.MenuMaxPageSize <= 0 {
		errList = append(errList, errors.New("MENU_MAX_PAGE_SIZE must be positive"))
	}
	if c.MenuDefaultPageSize > c.MenuMaxPageSize {
		errList = append(errList, errors.New("MENU_DEFAULT_PAGE_SIZE must not exceed MENU_MAX_PAGE_SIZE"))
	}
	if c.AuthJWTSecret == "" && c.AuthOIDCIssuer == "" {
		errList = append(errList, errors.New("one of AUTH_JWT_SECRET or AUTH_OIDC_ISSUER is required"))
	}
	if c.AuthOIDCIssuer != "" && c.AuthOIDCClientID == "" {
		errList = append(errList, errors.New("AUTH_OIDC_CLIENT_ID is required with AUTH_OIDC_ISSUER"))
	}
	return errors.Join(errList...)
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (c Config) KafkaBrokers() []string {
	if c.KafkaHost == "" {
		return nil
	}
	brokers := strings.Split(c.KafkaHost, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}
	return brokers
}
