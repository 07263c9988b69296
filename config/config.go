package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Datastore drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// ErrUnknownDriver is returned by Load for a datastore.driver outside the known set.
var ErrUnknownDriver = errors.New("unknown datastore driver")

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Storage
	Datastore DatastoreConfig
	Postgres  PostgresConfig
	SQLite    SQLiteConfig
	Redis     RedisConfig

	// Webhooks
	Webhook WebhookConfig
	Ngrok   NgrokConfig

	// Polling client
	Poller PollerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string // "*" allows any origin
}

type DatastoreConfig struct {
	Driver string // memory | sqlite | postgres | redis
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

type SQLiteConfig struct {
	Path string // ":memory:" for a throwaway database
}

type RedisConfig struct {
	URL string // redis://[:password@]host:port/db
}

type WebhookConfig struct {
	RateLimitPerMin int // 0 disables limiting
}

type NgrokConfig struct {
	APIURL string // ngrok local API, e.g. http://ngrok:4040; empty skips detection
}

type PollerConfig struct {
	URL      string
	Interval time.Duration
}

// Load loads configuration using Viper.
// A .env file in the working directory, if present, is loaded into the
// process environment first.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = stringList(v, "cors.allowed_origins")

	// Storage
	cfg.Datastore.Driver = strings.ToLower(strings.TrimSpace(v.GetString("datastore.driver")))
	cfg.Postgres.Host = v.GetString("postgres.host")
	cfg.Postgres.Port = v.GetInt("postgres.port")
	cfg.Postgres.User = v.GetString("postgres.user")
	cfg.Postgres.Password = v.GetString("postgres.password")
	cfg.Postgres.Database = v.GetString("postgres.database")
	cfg.Postgres.SSLMode = v.GetString("postgres.ssl_mode")
	cfg.SQLite.Path = v.GetString("sqlite.path")
	cfg.Redis.URL = v.GetString("redis.url")
	if redisURL := v.GetString("redis_url"); redisURL != "" {
		cfg.Redis.URL = redisURL
	}

	// Webhooks
	cfg.Webhook.RateLimitPerMin = v.GetInt("webhook.rate_limit_per_min")
	cfg.Ngrok.APIURL = v.GetString("ngrok.api_url")

	// Poller
	cfg.Poller.URL = v.GetString("poller.url")
	cfg.Poller.Interval = v.GetDuration("poller.interval")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Datastore.Driver {
	case DriverMemory, DriverSQLite, DriverPostgres, DriverRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Datastore.Driver)
	}
	if c.Datastore.Driver == DriverRedis && c.Redis.URL == "" {
		return errors.New("redis.url is required for the redis driver")
	}
	if c.Datastore.Driver == DriverSQLite && c.SQLite.Path == "" {
		return errors.New("sqlite.path is required for the sqlite driver")
	}
	if c.Webhook.RateLimitPerMin < 0 {
		return errors.New("webhook.rate_limit_per_min must not be negative")
	}
	if c.Poller.Interval <= 0 {
		return errors.New("poller.interval must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("cors.allowed_origins", "*")

	v.SetDefault("datastore.driver", DriverMemory)
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.database", "activity_feed")
	v.SetDefault("postgres.ssl_mode", "disable")
	v.SetDefault("sqlite.path", "activity_feed.db")

	v.SetDefault("webhook.rate_limit_per_min", 60)

	v.SetDefault("poller.url", "http://localhost:8080/webhook/notifications")
	v.SetDefault("poller.interval", "15s")
}

// stringList reads key as a YAML list, or as a comma separated string when
// it comes from an env var.
func stringList(v *viper.Viper, key string) []string {
	switch v.Get(key).(type) {
	case []any, []string:
		return splitList(strings.Join(v.GetStringSlice(key), ","))
	default:
		return splitList(v.GetString(key))
	}
}

// splitList splits a comma separated value, since viper does not parse
// arrays from env vars.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
