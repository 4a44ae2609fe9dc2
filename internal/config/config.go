package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"

	ResetCodeStatic = "static"
	ResetCodeStored = "stored"

	// DevJWTSecret is only accepted outside production
	DevJWTSecret = "default-secret-key"
)

// AppConfig holds every setting the portal reads from the environment
type AppConfig struct {
	Env        string
	ServerPort string
	LogLevel   string

	JWTSecret  string
	SessionTTL time.Duration

	StoreDriver  string
	SeedPassword string

	ResetCodeMode  string
	ResetCode      string
	ResetCodeTTL   time.Duration
	ResetCodeStore string
	SMSDelay       time.Duration

	Redis  RedisConfig
	Routes RouteConfig
}

// RouteConfig describes which paths the route guard treats as public
type RouteConfig struct {
	APIPrefix   string
	PublicAPI   []string
	PublicPages []string
	LoginPath   string
	HomePath    string
}

// DefaultRoutes returns the portal's public allow-lists
func DefaultRoutes() RouteConfig {
	return RouteConfig{
		APIPrefix: "/api",
		PublicAPI: []string{
			"/api/auth/login",
			"/api/auth/logout",
			"/api/auth/reset-password",
			"/api/auth/verify-code",
			"/api/auth/set-password",
		},
		PublicPages: []string{"/login", "/reset-password", "/verify-code"},
		LoginPath:   "/login",
		HomePath:    "/dashboard",
	}
}

// IsProduction reports whether the portal runs with production settings
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// Load reads the configuration from environment variables
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		Env:            getEnv("APP_ENV", "development"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		JWTSecret:      os.Getenv("JWT_SECRET_KEY"),
		StoreDriver:    strings.ToLower(getEnv("STORE_DRIVER", StoreMemory)),
		SeedPassword:   getEnv("SEED_PASSWORD", "password123"),
		ResetCodeMode:  strings.ToLower(getEnv("RESET_CODE_MODE", ResetCodeStatic)),
		ResetCode:      getEnv("RESET_CODE", "123456"),
		ResetCodeStore: strings.ToLower(getEnv("RESET_CODE_STORE", StoreMemory)),
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Routes: DefaultRoutes(),
	}

	var err error
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 15*time.Minute); err != nil {
		return nil, err
	}
	if cfg.ResetCodeTTL, err = getDuration("RESET_CODE_TTL", 10*time.Minute); err != nil {
		return nil, err
	}
	if cfg.SMSDelay, err = getDuration("SMS_DELAY", time.Second); err != nil {
		return nil, err
	}
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		if cfg.Redis.DB, err = strconv.Atoi(raw); err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", raw, err)
		}
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET_KEY not set in environment")
		}
		cfg.JWTSecret = DevJWTSecret
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) validate() error {
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	switch c.StoreDriver {
	case StoreMemory, StorePostgres:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}
	switch c.ResetCodeMode {
	case ResetCodeStatic:
		if len(c.ResetCode) != 6 || strings.Trim(c.ResetCode, "0123456789") != "" {
			return fmt.Errorf("RESET_CODE must be exactly 6 digits")
		}
	case ResetCodeStored:
		if c.ResetCodeTTL <= 0 {
			return fmt.Errorf("RESET_CODE_TTL must be positive")
		}
	default:
		return fmt.Errorf("unsupported RESET_CODE_MODE %q", c.ResetCodeMode)
	}
	switch c.ResetCodeStore {
	case StoreMemory, StoreRedis:
	default:
		return fmt.Errorf("unsupported RESET_CODE_STORE %q", c.ResetCodeStore)
	}
	if len(c.SeedPassword) < 6 || len(c.SeedPassword) > 50 {
		return fmt.Errorf("SEED_PASSWORD must be 6 to 50 characters")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}
