package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App           AppConfig
	Upstream      UpstreamConfig
	Cart          CartConfig
	Redis         RedisConfig
	JWT           JWTConfig
	AuthRateLimit AuthRateLimitConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := cfg.Cart.ShippingFeeAmount(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MANGO_APP_ENV" required:"true"`
	Port         string `envconfig:"MANGO_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MANGO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MANGO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// UpstreamConfig points the service at the remote store backend.
type UpstreamConfig struct {
	BaseURL string        `envconfig:"MANGO_UPSTREAM_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"MANGO_UPSTREAM_TIMEOUT" default:"15s"`
}

type CartConfig struct {
	ShippingFee string        `envconfig:"MANGO_CART_SHIPPING_FEE" default:"500"`
	MaxQuantity int           `envconfig:"MANGO_CART_MAX_QUANTITY" default:"10"`
	SessionTTL  time.Duration `envconfig:"MANGO_CART_SESSION_TTL" default:"24h"`
}

// ShippingFeeAmount parses the configured flat shipping fee.
func (c CartConfig) ShippingFeeAmount() (decimal.Decimal, error) {
	fee, err := decimal.NewFromString(c.ShippingFee)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing shipping fee %q: %w", c.ShippingFee, err)
	}
	if fee.IsNegative() {
		return decimal.Zero, fmt.Errorf("shipping fee must not be negative, got %s", fee)
	}
	return fee, nil
}

type RedisConfig struct {
	URL          string        `envconfig:"MANGO_REDIS_URL" required:"true"`
	Address      string        `envconfig:"MANGO_REDIS_ADDR"`
	Password     string        `envconfig:"MANGO_REDIS_PASSWORD"`
	DB           int           `envconfig:"MANGO_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MANGO_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MANGO_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MANGO_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MANGO_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MANGO_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"MANGO_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"MANGO_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"MANGO_JWT_EXPIRATION_MINUTES" required:"true"`
}

// SessionTTL returns the lifetime of an admin session record.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"MANGO_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"MANGO_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"MANGO_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}
