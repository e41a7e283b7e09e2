package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"liquidation_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendDynamoDB = "dynamodb"
	BackendRedis    = "redis"
	BackendRemote   = "remote"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all application configuration
type Config struct {
	App         AppConfig
	HTTP        HTTPConfig
	Log         LogConfig
	Storage     StorageConfig
	DynamoDB    DynamoDBConfig
	Redis       RedisConfig
	Remote      RemoteConfig
	Liquidation LiquidationConfig
	Customer    CustomerConfig
	Payment     PaymentConfig
	JWT         JWTConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port int
}

type HTTPConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// StorageConfig selects where customers and liquidations are kept.
type StorageConfig struct {
	Backend         string
	CustomersKey    string
	LiquidationsKey string
	SQLitePath      string
	Seed            bool
}

type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	Table           string
	AccessKeyID     string
	SecretAccessKey string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// RemoteConfig points the HTTP-backed repositories at an upstream API.
type RemoteConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type LiquidationConfig struct {
	StatusFlavor     entities.StatusFlavor
	PenaltyDailyRate decimal.Decimal
}

type CustomerConfig struct {
	NameFlavor entities.NameFlavor
}

type PaymentConfig struct {
	Enabled     bool
	AccessToken string
	Mock        bool
	MethodID    string
	PayerEmail  string
}

// JWTConfig enables bearer token checks on /v1 when Secret is set.
type JWTConfig struct {
	Secret string
}

// IsProduction reports whether the app runs with production settings.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment wins over the file.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	bindLegacyEnv(v)

	return build(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "liquidation-backoffice")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", 8080)

	v.SetDefault("http.read_timeout", "15s")
	v.SetDefault("http.write_timeout", "15s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("storage.backend", BackendSQLite)
	v.SetDefault("storage.customers_key", "customers_data_v1")
	v.SetDefault("storage.liquidations_key", "liquidations_data_v1")
	v.SetDefault("storage.sqlite_path", "backoffice.db")
	v.SetDefault("storage.seed", true)

	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.table", "backoffice_kv")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "backoffice:")

	v.SetDefault("remote.timeout", "10s")

	v.SetDefault("payment.method_id", "pix")
	v.SetDefault("payment.payer_email", "test_user_br@testuser.com")

	v.SetDefault("liquidation.status_flavor", string(entities.StatusFlavorLocal))
	v.SetDefault("liquidation.penalty_daily_rate", "0")
	v.SetDefault("customer.name_flavor", string(entities.NameFlavorSplit))
}

// bindLegacyEnv keeps the variable names already used by deployments.
func bindLegacyEnv(v *viper.Viper) {
	_ = v.BindEnv("app.port", "APP_PORT", "PORT")
	_ = v.BindEnv("dynamodb.region", "DYNAMODB_REGION", "AWS_REGION")
	_ = v.BindEnv("dynamodb.access_key_id", "DYNAMODB_ACCESS_KEY_ID", "AWS_ACCESS_KEY_ID")
	_ = v.BindEnv("dynamodb.secret_access_key", "DYNAMODB_SECRET_ACCESS_KEY", "AWS_SECRET_ACCESS_KEY")
	_ = v.BindEnv("payment.access_token", "PAYMENT_ACCESS_TOKEN", "MERCADOPAGO_ACCESS_TOKEN")
	_ = v.BindEnv("payment.mock", "PAYMENT_MOCK", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK")
	_ = v.BindEnv("payment.enabled", "PAYMENT_ENABLED", "PAYMENT_GATEWAY_ENABLED")
	_ = v.BindEnv("liquidation.penalty_daily_rate", "LIQUIDATION_PENALTY_DAILY_RATE", "PENALTY_DAILY_RATE")
	_ = v.BindEnv("customer.name_flavor", "CUSTOMER_NAME_FLAVOR")
}

func build(v *viper.Viper) (*Config, error) {
	statusFlavor, err := entities.ParseStatusFlavor(v.GetString("liquidation.status_flavor"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	nameFlavor, err := entities.ParseNameFlavor(v.GetString("customer.name_flavor"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	rate, err := decimal.NewFromString(strings.TrimSpace(v.GetString("liquidation.penalty_daily_rate")))
	if err != nil || rate.IsNegative() {
		return nil, fmt.Errorf("%w: penalty daily rate %q", ErrInvalidConfig, v.GetString("liquidation.penalty_daily_rate"))
	}

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetInt("app.port"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:  v.GetDuration("http.read_timeout"),
			WriteTimeout: v.GetDuration("http.write_timeout"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Storage: StorageConfig{
			Backend:         strings.ToLower(strings.TrimSpace(v.GetString("storage.backend"))),
			CustomersKey:    v.GetString("storage.customers_key"),
			LiquidationsKey: v.GetString("storage.liquidations_key"),
			SQLitePath:      v.GetString("storage.sqlite_path"),
			Seed:            v.GetBool("storage.seed"),
		},
		DynamoDB: DynamoDBConfig{
			Region:          v.GetString("dynamodb.region"),
			Endpoint:        v.GetString("dynamodb.endpoint"),
			Table:           v.GetString("dynamodb.table"),
			AccessKeyID:     v.GetString("dynamodb.access_key_id"),
			SecretAccessKey: v.GetString("dynamodb.secret_access_key"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			Prefix:   v.GetString("redis.prefix"),
		},
		Remote: RemoteConfig{
			BaseURL: strings.TrimRight(v.GetString("remote.base_url"), "/"),
			Token:   v.GetString("remote.token"),
			Timeout: v.GetDuration("remote.timeout"),
		},
		Liquidation: LiquidationConfig{
			StatusFlavor:     statusFlavor,
			PenaltyDailyRate: rate,
		},
		Customer: CustomerConfig{NameFlavor: nameFlavor},
		Payment: PaymentConfig{
			Enabled:     v.GetBool("payment.enabled"),
			AccessToken: v.GetString("payment.access_token"),
			Mock:        v.GetBool("payment.mock"),
			MethodID:    v.GetString("payment.method_id"),
			PayerEmail:  v.GetString("payment.payer_email"),
		},
		JWT: JWTConfig{Secret: v.GetString("jwt.secret")},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendSQLite, BackendDynamoDB, BackendRedis:
	case BackendRemote:
		if c.Remote.BaseURL == "" {
			return fmt.Errorf("%w: remote backend requires REMOTE_BASE_URL", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalidConfig, c.Storage.Backend)
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidConfig, c.App.Port)
	}
	if c.Storage.CustomersKey == "" || c.Storage.LiquidationsKey == "" {
		return fmt.Errorf("%w: storage keys must not be empty", ErrInvalidConfig)
	}
	return nil
}
