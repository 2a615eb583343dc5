// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Store drivers accepted in STORE_DRIVER.
const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port                string  `mapstructure:"PORT"`
	Env                 string  `mapstructure:"APP_ENV"`
	JWTSecret           string  `mapstructure:"JWT_SECRET"`
	StoreDriver         string  `mapstructure:"STORE_DRIVER"`
	MongoURI            string  `mapstructure:"MONGO_URI"`
	MongoHost           string  `mapstructure:"MONGO_HOST"`
	MongoDatabase       string  `mapstructure:"MONGO_DATABASE"`
	DBUser              string  `mapstructure:"DB_USER"`
	DBPassword          string  `mapstructure:"DB_PASS"`
	DBHost              string  `mapstructure:"DB_HOST"`
	DBPort              string  `mapstructure:"DB_PORT"`
	DBName              string  `mapstructure:"DB_NAME"`
	DBSSLMode           string  `mapstructure:"DB_SSLMODE"`
	SQLitePath          string  `mapstructure:"SQLITE_PATH"`
	RedisURL            string  `mapstructure:"REDIS_URL"`
	StripeSecretKey     string  `mapstructure:"STRIPE_SECRET_KEY"`
	PaymentCurrency     string  `mapstructure:"PAYMENT_CURRENCY"`
	AllowedOrigins      string  `mapstructure:"ALLOWED_ORIGINS"`
	FeatureFlags        string  `mapstructure:"FEATURE_FLAGS"`
	BootstrapAdminEmail string  `mapstructure:"BOOTSTRAP_ADMIN_EMAIL"`
	TracingEnabled      bool    `mapstructure:"TRACING_ENABLED"`
	TracingExporter     string  `mapstructure:"TRACING_EXPORTER"`
	OTLPEndpoint        string  `mapstructure:"OTLP_ENDPOINT"`
	TracingSampleRatio  float64 `mapstructure:"TRACING_SAMPLE_RATIO"`
}

// LoadConfig loads application configuration from .env, config files and environment variables.
func LoadConfig() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The base config file is optional.
	_ = viper.ReadInConfig()

	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	if env != "development" {
		viper.SetConfigName("config." + env)
		if err := viper.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config.%s.yml: %w", env, err)
			}
		} else {
			log.Printf("Loaded profile-specific configuration: config.%s.yml", env)
		}
	}

	// ACCESS_SECRET_TOKEN is the name older deployments use for the signing secret.
	// Checked before defaults are registered, since IsSet counts defaults.
	if legacy := viper.GetString("ACCESS_SECRET_TOKEN"); legacy != "" && !viper.IsSet("JWT_SECRET") {
		viper.Set("JWT_SECRET", legacy)
	}

	setDefaults()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.normalize()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("STORE_DRIVER", StoreMongo)
	viper.SetDefault("MONGO_URI", "")
	viper.SetDefault("MONGO_HOST", "localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "socialPod")
	viper.SetDefault("DB_USER", "")
	viper.SetDefault("DB_PASS", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "socialpod")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("SQLITE_PATH", "socialpod.db")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("PAYMENT_CURRENCY", "usd")
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("FEATURE_FLAGS", "")
	viper.SetDefault("BOOTSTRAP_ADMIN_EMAIL", "")
	viper.SetDefault("TRACING_ENABLED", false)
	viper.SetDefault("TRACING_EXPORTER", "stdout")
	viper.SetDefault("OTLP_ENDPOINT", "localhost:4318")
	viper.SetDefault("TRACING_SAMPLE_RATIO", 1.0)
}

func (c *Config) normalize() {
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	c.DBSSLMode = strings.ToLower(strings.TrimSpace(c.DBSSLMode))
	c.PaymentCurrency = strings.ToLower(strings.TrimSpace(c.PaymentCurrency))
	c.BootstrapAdminEmail = strings.ToLower(strings.TrimSpace(c.BootstrapAdminEmail))
}

// IsProduction reports whether the app runs with production safeguards.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// RateLimitEnabled reports whether per-route Redis rate limits apply.
func (c *Config) RateLimitEnabled() bool {
	return c.Env != "development" && c.Env != "test"
}

// MongoConnectionURI returns MONGO_URI, or builds one from the database credentials.
func (c *Config) MongoConnectionURI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	host := c.MongoHost
	if host == "" {
		host = "localhost:27017"
	}
	if c.DBUser == "" {
		return "mongodb://" + host
	}
	return fmt.Sprintf("mongodb://%s:%s@%s",
		url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPassword), host)
}

// PostgresDSN returns the connection string for the relational backend.
func (c *Config) PostgresDSN() string {
	sslMode := c.DBSSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode,
	)
}

// Validate ensures that required configuration values are present and meet security standards.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	switch c.StoreDriver {
	case StoreMongo, StorePostgres, StoreSQLite:
	default:
		return fmt.Errorf("STORE_DRIVER must be one of %s, %s, %s", StoreMongo, StorePostgres, StoreSQLite)
	}

	if c.IsProduction() {
		if c.JWTSecret == defaultJWTSecret {
			return errors.New("JWT_SECRET must be changed from the default value in production")
		}
		if len(c.JWTSecret) < 32 {
			return errors.New("JWT_SECRET must be at least 32 characters in production")
		}
		if c.StripeSecretKey == "" {
			return errors.New("STRIPE_SECRET_KEY is required in production")
		}
		if c.StoreDriver == StorePostgres && (c.DBSSLMode == "" || c.DBSSLMode == "disable") {
			return errors.New("DB_SSLMODE must enable TLS in production")
		}
		if c.AllowedOrigins == "*" {
			log.Println("WARNING: ALLOWED_ORIGINS is set to '*' in production. This is insecure.")
		}
	} else if len(c.JWTSecret) < 32 {
		log.Println("WARNING: JWT_SECRET is shorter than 32 characters. Consider using a stronger secret for production.")
	}

	return nil
}
