package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env         string
	Port        string
	ServiceName string

	MongoURI    string
	MongoDBName string

	JWTSecret    string
	JWTExpiresIn time.Duration

	FrontendURL string

	HotelAPIHost    string
	HotelAPIKey     string
	HotelAPIBaseURL string

	RedisAddr string

	JaegerAddress string
	LogLevel      string
	LogFile       string

	ShutdownTimeout time.Duration
}

// LoadConfig reads a .env file when one exists and then the process
// environment. Missing values fall back to development defaults.
func LoadConfig() (*Config, error) {
	// a missing .env is normal in containers
	_ = godotenv.Load()

	expiresIn, err := ParseExpiry(getEnv("JWT_EXPIRES_IN", "7d"))
	if err != nil {
		return nil, fmt.Errorf("couldn't parse JWT_EXPIRES_IN: %w", err)
	}

	host := getEnv("HOTEL_API_HOST", "booking-com15.p.rapidapi.com")
	cfg := &Config{
		Env:             getEnv("APP_ENV", EnvDevelopment),
		Port:            getEnv("PORT", "5000"),
		ServiceName:     getEnv("SERVICE_NAME", "rootroutes-service"),
		MongoURI:        getEnv("MONGO_DB_URI", "mongodb://localhost:27017"),
		MongoDBName:     getEnv("MONGO_DB_NAME", "rootroutes"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		JWTExpiresIn:    expiresIn,
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:3000"),
		HotelAPIHost:    host,
		HotelAPIKey:     os.Getenv("HOTEL_API_KEY"),
		HotelAPIBaseURL: getEnv("HOTEL_API_BASE_URL", "https://"+host),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		JaegerAddress:   os.Getenv("JAEGER_ADDRESS"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         os.Getenv("LOG_FILE"),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 5*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		if c.Env == EnvProduction {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		c.JWTSecret = "rootroutes-dev-secret"
	}
	if c.JWTExpiresIn <= 0 {
		return fmt.Errorf("JWT_EXPIRES_IN must be positive")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func (c *Config) IsHotelAPIConfigured() bool {
	return c.HotelAPIKey != ""
}

// ParseExpiry accepts Go durations ("168h") and whole days ("7d").
func ParseExpiry(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if strings.HasSuffix(value, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(value, "d"))
		if err != nil {
			return 0, fmt.Errorf("invalid day count %q", value)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	return time.ParseDuration(value)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
