package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, payment credentials)
// - default: Values common across all environments (TTL, timeouts, standard settings)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	Quotes  QuotesConfig
	Payment PaymentConfig
	Widget  WidgetConfig
	CORS    CORSConfig
	Log     LogConfig
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

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// QuotesConfig controls the quote ledger: how long a quote stays honorable
// and which backend holds it.
type QuotesConfig struct {
	TTL   time.Duration `envconfig:"QUOTES_TTL" default:"15m"`
	Store string        `envconfig:"QUOTES_STORE" default:"memory"` // memory | redis
}

// PaymentConfig carries the gateway credentials plus the card-on-file
// instrument the authorization is charged against. The card defaults are the
// sandbox test instrument.
type PaymentConfig struct {
	BaseURL        string        `envconfig:"PAYMENT_BASE_URL" default:"https://test.travel.api.amadeus.com"`
	ClientID       string        `envconfig:"PAYMENT_CLIENT_ID" required:"true"`
	ClientSecret   string        `envconfig:"PAYMENT_CLIENT_SECRET" required:"true"`
	PropertyID     string        `envconfig:"PAYMENT_PROPERTY_ID" default:"20182436"`
	PayeeCode      string        `envconfig:"PAYMENT_PAYEE_CODE" default:"H2X"`
	TraceReference string        `envconfig:"PAYMENT_TRACE_REFERENCE" default:"48XY06XLU0910"`
	CardVendorCode string        `envconfig:"PAYMENT_CARD_VENDOR_CODE" default:"CA"`
	CardToken      string        `envconfig:"PAYMENT_CARD_TOKEN" default:"555544G4MN3T1111"`
	CardExpiry     string        `envconfig:"PAYMENT_CARD_EXPIRY" default:"2030-03"`
	CardHolderName string        `envconfig:"PAYMENT_CARD_HOLDER" default:"Test"`
	Timeout        time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"10s"`
}

type WidgetConfig struct {
	TemplatePath string `envconfig:"WIDGET_TEMPLATE_PATH" default:"public/reservation-widget.html"`
	DataPath     string `envconfig:"WIDGET_DATA_PATH" default:"db/reservations.json"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/London"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Quotes: QuotesConfig{
			TTL:   15 * time.Minute,
			Store: "memory",
		},
		Payment: PaymentConfig{
			BaseURL:        "http://localhost:18080",
			ClientID:       "test-client",
			ClientSecret:   "test-secret",
			PropertyID:     "20182436",
			PayeeCode:      "H2X",
			TraceReference: "48XY06XLU0910",
			CardVendorCode: "CA",
			CardToken:      "555544G4MN3T1111",
			CardExpiry:     "2030-03",
			CardHolderName: "Test",
			Timeout:        2 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/London",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
