package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	AES        AESConfig        `mapstructure:"aes"`
	Gateway    GatewayConfig    `mapstructure:"gateway"`
	Settlement SettlementConfig `mapstructure:"settlement"`
	Webhook    WebhookConfig    `mapstructure:"webhook"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	MigrateOnStart  bool          `mapstructure:"migrate_on_start"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	PoolSize    int           `mapstructure:"pool_size"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key, seals wallet grant tokens
}

// GatewayConfig selects and tunes the payment network adapter.
type GatewayConfig struct {
	Driver          string        `mapstructure:"driver"` // openpayments, stub
	AccessToken     string        `mapstructure:"access_token"`
	Timeout         time.Duration `mapstructure:"timeout"`
	AddressCacheTTL time.Duration `mapstructure:"address_cache_ttl"`
	AssetCode       string        `mapstructure:"asset_code"`
	AssetScale      int           `mapstructure:"asset_scale"`
}

// SettlementConfig tunes the orchestrator and the background reconciler.
type SettlementConfig struct {
	GatewayTimeout    time.Duration `mapstructure:"gateway_timeout"`
	LockTTL           time.Duration `mapstructure:"lock_ttl"`
	ReconcileInterval time.Duration `mapstructure:"reconcile_interval"` // 0 disables the reconciler
	StaleAfter        time.Duration `mapstructure:"stale_after"`
	ReconcileBatch    int           `mapstructure:"reconcile_batch"`
}

// networkStages is the number of gateway calls in one settlement attempt.
const networkStages = 3

// CommitMargin is the allowance for the database commit after the last gateway call.
const CommitMargin = 30 * time.Second

// AttemptBudget is the longest one settlement attempt can stay pending:
// every gateway call hitting its timeout plus the commit.
func (s SettlementConfig) AttemptBudget() time.Duration {
	return networkStages*s.GatewayTimeout + CommitMargin
}

type WebhookConfig struct {
	URL    string `mapstructure:"url"` // empty disables settlement webhooks
	Secret string `mapstructure:"secret"`
}

type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CONDO_.
// Nested keys use underscore: CONDO_DATABASE_HOST, CONDO_SETTLEMENT_LOCK_TTL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("CONDO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing file is fine, env vars can carry everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "condo_settlement")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.migrate_on_start", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 20)
	v.SetDefault("redis.dial_timeout", "5s")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "condo-settlement")
	v.SetDefault("aes.key", "")
	v.SetDefault("gateway.driver", "openpayments")
	v.SetDefault("gateway.access_token", "")
	v.SetDefault("gateway.timeout", "15s")
	v.SetDefault("gateway.address_cache_ttl", "10m")
	v.SetDefault("gateway.asset_code", "USD")
	v.SetDefault("gateway.asset_scale", 2)
	v.SetDefault("settlement.gateway_timeout", "10s")
	v.SetDefault("settlement.lock_ttl", "2m")
	v.SetDefault("settlement.reconcile_interval", "1m")
	v.SetDefault("settlement.stale_after", "5m")
	v.SetDefault("settlement.reconcile_batch", 50)
	v.SetDefault("webhook.url", "")
	v.SetDefault("webhook.secret", "")
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "localhost:4318")
	v.SetDefault("telemetry.service_name", "condo-settlement")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
}

func (c *Config) validate() error {
	switch c.Gateway.Driver {
	case "openpayments", "stub":
	default:
		return fmt.Errorf("unknown gateway driver %q", c.Gateway.Driver)
	}
	if c.Settlement.GatewayTimeout <= 0 {
		return fmt.Errorf("settlement.gateway_timeout must be positive, got %s", c.Settlement.GatewayTimeout)
	}
	if c.Settlement.LockTTL <= c.Settlement.GatewayTimeout {
		return fmt.Errorf("settlement.lock_ttl (%s) must exceed settlement.gateway_timeout (%s)",
			c.Settlement.LockTTL, c.Settlement.GatewayTimeout)
	}
	// A pending row younger than one full attempt may still be waiting on the network.
	if budget := c.Settlement.AttemptBudget(); c.Settlement.StaleAfter <= budget {
		return fmt.Errorf("settlement.stale_after (%s) must exceed one settlement attempt (%s)",
			c.Settlement.StaleAfter, budget)
	}
	return nil
}
