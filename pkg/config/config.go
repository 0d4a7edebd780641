package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	StoreDriverBadger = "badger"
	StoreDriverSQLite = "sqlite"
)

type Config struct {
	App           AppConfig
	Store         StoreConfig
	Redis         RedisConfig
	AuthRateLimit AuthRateLimitConfig
	Flutterwave   FlutterwaveConfig
	CORS          CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Store.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ENSIGO_APP_ENV" default:"development"`
	Port         string `envconfig:"ENSIGO_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"ENSIGO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ENSIGO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type StoreConfig struct {
	Driver string `envconfig:"ENSIGO_STORE_DRIVER" default:"badger"`
	// Path is the badger data directory or the sqlite database file.
	Path string `envconfig:"ENSIGO_STORE_PATH" default:"./data/ensigotrace"`
}

func (s StoreConfig) NormalizedDriver() string {
	return strings.TrimSpace(strings.ToLower(s.Driver))
}

func (s StoreConfig) validate() error {
	switch s.NormalizedDriver() {
	case StoreDriverBadger, StoreDriverSQLite:
		return nil
	default:
		return fmt.Errorf("store driver must be %q or %q, got %q", StoreDriverBadger, StoreDriverSQLite, s.Driver)
	}
}

// RedisConfig is optional: when URL and Address are both empty, login rate
// limiting is disabled and the service runs standalone.
type RedisConfig struct {
	URL          string        `envconfig:"ENSIGO_REDIS_URL"`
	Address      string        `envconfig:"ENSIGO_REDIS_ADDR"`
	Password     string        `envconfig:"ENSIGO_REDIS_PASSWORD"`
	DB           int           `envconfig:"ENSIGO_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ENSIGO_REDIS_POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"ENSIGO_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ENSIGO_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ENSIGO_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"ENSIGO_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"ENSIGO_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"ENSIGO_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type FlutterwaveConfig struct {
	PublicKey string `envconfig:"ENSIGO_FLUTTERWAVE_PUBLIC_KEY"`
	Env       string `envconfig:"ENSIGO_FLUTTERWAVE_ENV" default:"test"`
	Currency  string `envconfig:"ENSIGO_FLUTTERWAVE_CURRENCY" default:"UGX"`
	LogoURL   string `envconfig:"ENSIGO_FLUTTERWAVE_LOGO_URL"`
}

// Environment returns the normalized Flutterwave environment (test/live).
func (f FlutterwaveConfig) Environment() string {
	env := strings.TrimSpace(strings.ToLower(f.Env))
	if env == "" {
		return "test"
	}
	return env
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"ENSIGO_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
