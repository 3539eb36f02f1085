package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            int
	DatabaseURL     string
	DatabaseType    string
	RedisAddr       string
	RedisPassword   string
	AdminUsername   string
	AdminPassword   string
	LoginDelay      time.Duration
	LoginRate       float64
	LoginBurst      int
	CatalogFile     string
	AutofillEnabled bool
}

// Built-in console credentials. Overridable, never hardened.
const (
	DefaultAdminUsername = "bossman"
	DefaultAdminPassword = "raygreen"
	DefaultLoginDelay    = 800 * time.Millisecond
)

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Missing .env is fine; real env vars always win over it.
	_ = godotenv.Load()

	fs := flag.NewFlagSet("raypark-console", flag.ContinueOnError)

	// Network / storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Storage backend (sqlite, postgres, redis or memory)")
	fs.StringVar(&cfg.RedisAddr, "redis", "", "Redis address (host:port)")

	// Console login (prefer env variables)
	fs.StringVar(&cfg.AdminUsername, "user", "", "Console username (prefer env)")
	fs.StringVar(&cfg.AdminPassword, "password", "", "Console password (prefer env)")
	fs.DurationVar(&cfg.LoginDelay, "login-delay", -1, "Fixed delay before a login attempt is answered")
	fs.Float64Var(&cfg.LoginRate, "login-rate", 0, "Login attempts per second per client")

	// Features
	fs.StringVar(&cfg.CatalogFile, "catalog", "", "YAML file overriding the built-in catalogs")
	fs.BoolVar(&cfg.AutofillEnabled, "autofill", false, "Enable the sample data auto-fill endpoints")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	switch cfg.DatabaseType {
	case "sqlite", "postgres", "redis", "memory":
	default:
		return Config{}, errors.New("DATABASE_TYPE must be one of: sqlite, postgres, redis, memory")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		switch cfg.DatabaseType {
		case "sqlite":
			cfg.DatabaseURL = "raypark.db"
		case "postgres":
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	}

	if cfg.RedisAddr == "" {
		cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	}
	if cfg.RedisAddr == "" && cfg.DatabaseType == "redis" {
		cfg.RedisAddr = "localhost:6379"
	}
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	if cfg.AdminUsername == "" {
		cfg.AdminUsername = os.Getenv("ADMIN_USERNAME")
	}
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = DefaultAdminUsername
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = DefaultAdminPassword
	}

	if cfg.LoginDelay < 0 {
		cfg.LoginDelay = DefaultLoginDelay
		if s := os.Getenv("LOGIN_DELAY"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid LOGIN_DELAY env variable")
			}
			cfg.LoginDelay = d
		}
	}

	if cfg.LoginRate == 0 {
		cfg.LoginRate = 1
		if s := os.Getenv("LOGIN_RATE"); s != "" {
			r, err := strconv.ParseFloat(s, 64)
			if err != nil || r <= 0 {
				return Config{}, errors.New("invalid LOGIN_RATE env variable")
			}
			cfg.LoginRate = r
		}
	}
	cfg.LoginBurst = 5

	if cfg.CatalogFile == "" {
		cfg.CatalogFile = os.Getenv("CATALOG_FILE")
	}

	if !cfg.AutofillEnabled {
		cfg.AutofillEnabled = os.Getenv("AUTOFILL_ENABLED") == "true"
	}

	return cfg, nil
}
