package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (port, DB, gateway creds)
// - default: values common across all environments (rounding policy, timeouts)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Gateway GatewayConfig
	Payment PaymentConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02T15:04:05.000Z07:00"`
}

// GatewayConfig points at the external payment provider. Amounts cross
// this boundary as integer minor units of Currency.
type GatewayConfig struct {
	BaseURL        string `envconfig:"GATEWAY_BASE_URL" required:"true"`
	ClientID       string `envconfig:"GATEWAY_CLIENT_ID" required:"true"`
	APIKey         string `envconfig:"GATEWAY_API_KEY" required:"true"`
	Currency       string `envconfig:"GATEWAY_CURRENCY" default:"EUR"`
	TimeoutSeconds int    `envconfig:"GATEWAY_TIMEOUT_SECONDS" default:"30"`
}

// PaymentConfig carries the financial policy knobs. The rounding values
// are load-bearing: changing them changes charged amounts.
type PaymentConfig struct {
	DepositRenewalCap  int64 `envconfig:"PAYMENT_DEPOSIT_RENEWAL_CAP" default:"49"`
	OwnerFeesThreshold int64 `envconfig:"PAYMENT_OWNER_FEES_THRESHOLD" default:"20"`
	MaxDiscountPercent int64 `envconfig:"PAYMENT_MAX_DISCOUNT_PERCENT" default:"80"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:          "error",
			TimeZone:       "UTC",
			TimeZoneOffset: 0,
			TimeFormat:     "2006-01-02T15:04:05.000Z07:00",
		},
		Gateway: GatewayConfig{
			BaseURL:        "http://localhost:9090",
			ClientID:       "test-client",
			APIKey:         "test-key",
			Currency:       "EUR",
			TimeoutSeconds: 5,
		},
		Payment: PaymentConfig{
			DepositRenewalCap:  49,
			OwnerFeesThreshold: 20,
			MaxDiscountPercent: 80,
		},
	}
}
