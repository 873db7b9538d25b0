// Env loader
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/taiwoajasa245/sabbath-lesson-api/pkg/validation"
)

type Config struct {
	AppEnv             string `validate:"required"`
	Port               string `validate:"required,numeric"`
	DBHost             string `validate:"required"`
	DBPort             string `validate:"required,numeric"`
	DBName             string `validate:"required"`
	DBUser             string `validate:"required"`
	DBPassword         string
	DBSchema           string        `validate:"required"`
	DBSSLMode          string        `validate:"oneof=disable allow prefer require verify-ca verify-full"`
	DBMaxOpenConns     int           `validate:"gte=0"`
	DBMaxIdleConns     int           `validate:"gte=0"`
	DBConnMaxLifetime  time.Duration `validate:"gte=0"`
	DBAutoMigrate      bool
	CORSAllowedOrigins []string      `validate:"min=1"`
	ShutdownTimeout    time.Duration `validate:"gt=0"`
	LogLevel           string        `validate:"oneof=debug info warn error"`
}

// LoadConfig loads environment variables from the .env file matching APP_ENV,
// then reads every setting from the environment with defaults applied.
func LoadConfig() (*Config, error) {
	appEnv := os.Getenv("APP_ENV")

	switch appEnv {
	case "production":
		if err := godotenv.Load(".env.production"); err == nil {
			fmt.Println("Loaded .env.production")
		}
	default:
		if err := godotenv.Load(".env.development"); err == nil {
			fmt.Println("Loaded .env.development")
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		AppEnv:             v.GetString("APP_ENV"),
		Port:               v.GetString("PORT"),
		DBHost:             v.GetString("DB_HOST"),
		DBPort:             v.GetString("DB_PORT"),
		DBName:             v.GetString("DB_DATABASE"),
		DBUser:             v.GetString("DB_USERNAME"),
		DBPassword:         v.GetString("DB_PASSWORD"),
		DBSchema:           v.GetString("DB_SCHEMA"),
		DBSSLMode:          v.GetString("DB_SSLMODE"),
		DBMaxOpenConns:     v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:     v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime:  v.GetDuration("DB_CONN_MAX_LIFETIME"),
		DBAutoMigrate:      v.GetBool("DB_AUTO_MIGRATE"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		ShutdownTimeout:    v.GetDuration("SHUTDOWN_TIMEOUT"),
		LogLevel:           strings.ToLower(v.GetString("LOG_LEVEL")),
	}

	validator, err := validation.NewValidator()
	if err != nil {
		return nil, err
	}
	if err := validator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_DATABASE", "sabbath_lessons")
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_SCHEMA", "public")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("LOG_LEVEL", "info")
}

// DSN returns the pgx connection string for the configured database.
func (c *Config) DSN() string {
	q := url.Values{}
	q.Set("sslmode", c.DBSSLMode)
	q.Set("search_path", c.DBSchema)

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: q.Encode(),
	}
	return u.String()
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
