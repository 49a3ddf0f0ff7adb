package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Server   ServerConfig   `yaml:"server"`
	CORS     CORSConfig     `yaml:"cors"`
	Log      LogConfig      `yaml:"log"`
	Admin    AdminConfig    `yaml:"admin"`
}

type DatabaseConfig struct {
	// Driver is one of postgres, mysql or sqlite
	Driver         string        `yaml:"driver"`
	URL            string        `yaml:"url"`
	MaxConns       int           `yaml:"max_conns"`
	AcquireTimeout time.Duration `yaml:"acquire_timeout"`
	AutoMigrate    bool          `yaml:"auto_migrate"`
}

type JWTConfig struct {
	Secret   string        `yaml:"secret"`
	TokenTTL time.Duration `yaml:"token_ttl"`
}

type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// AdminConfig describes an optional account created at startup when missing
type AdminConfig struct {
	BootstrapEmail    string `yaml:"bootstrap_email"`
	BootstrapPassword string `yaml:"bootstrap_password"`
}

// Default returns the configuration used when nothing overrides a value
func Default() Config {
	return Config{
		Database: DatabaseConfig{
			Driver:         "postgres",
			MaxConns:       10,
			AcquireTimeout: 5 * time.Second,
			AutoMigrate:    true,
		},
		JWT: JWTConfig{
			TokenTTL: 24 * time.Hour,
		},
		Server: ServerConfig{
			Host:    "127.0.0.1",
			Port:    "3000",
			GinMode: "debug",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig builds the process configuration once: defaults, then the
// optional YAML file named by CONFIG_FILE, then environment variables.
func LoadConfig() (Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.Database.Driver = getEnv("DB_DRIVER", cfg.Database.Driver)
	cfg.Database.URL = getEnv("DATABASE_URL", cfg.Database.URL)
	cfg.JWT.Secret = getEnv("JWT_SECRET", cfg.JWT.Secret)
	cfg.Server.Host = getEnv("HOST", cfg.Server.Host)
	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Server.GinMode = getEnv("GIN_MODE", cfg.Server.GinMode)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Admin.BootstrapEmail = getEnv("ADMIN_EMAIL", cfg.Admin.BootstrapEmail)
	cfg.Admin.BootstrapPassword = getEnv("ADMIN_PASSWORD", cfg.Admin.BootstrapPassword)

	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.CORS.AllowedOrigins = parseOrigins(v)
	}

	var err error
	if cfg.Database.MaxConns, err = getInt("DB_MAX_CONNS", cfg.Database.MaxConns); err != nil {
		return err
	}
	if cfg.Database.AcquireTimeout, err = getDuration("DB_ACQUIRE_TIMEOUT", cfg.Database.AcquireTimeout); err != nil {
		return err
	}
	if cfg.JWT.TokenTTL, err = getDuration("TOKEN_TTL", cfg.JWT.TokenTTL); err != nil {
		return err
	}
	if cfg.Database.AutoMigrate, err = getBool("DB_AUTO_MIGRATE", cfg.Database.AutoMigrate); err != nil {
		return err
	}
	if cfg.Log.Pretty, err = getBool("LOG_PRETTY", cfg.Log.Pretty); err != nil {
		return err
	}
	return nil
}

// Validate reports settings the process cannot start without
func (c Config) Validate() error {
	var errs []error
	if c.Database.URL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver))
	}
	if c.Database.MaxConns < 1 {
		errs = append(errs, errors.New("DB_MAX_CONNS must be at least 1"))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.JWT.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}
	return errors.Join(errs...)
}

// Addr returns the listen address for the HTTP server
func (c Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (c Config) IsRelease() bool {
	return c.Server.GinMode == "release"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return b, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}

func parseOrigins(s string) []string {
	origins := []string{}
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
