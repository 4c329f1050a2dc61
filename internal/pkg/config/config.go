package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, service URLs, DB connection), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - empty default: optional integrations (Redis, AMQP) that fall back to an in-process implementation
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Services ServicesConfig
	Checkout CheckoutConfig
	Redis    RedisConfig
	AMQP     AMQPConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Checkout-Session,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
	// File enables a rotating log file next to stdout.
	File       string `envconfig:"LOG_FILE" default:""`
	MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"100"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"5"`
	MaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"14"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

// ServicesConfig holds the base URLs of the backends the checkout talks to.
type ServicesConfig struct {
	BookingURL   string        `envconfig:"BOOKING_SERVICE_URL" required:"true"`
	PaymentURL   string        `envconfig:"PAYMENT_SERVICE_URL" required:"true"`
	ItineraryURL string        `envconfig:"ITINERARY_SERVICE_URL" required:"true"`
	Timeout      time.Duration `envconfig:"SERVICE_TIMEOUT" default:"15s"`
}

type CheckoutConfig struct {
	DefaultPaymentMethod string        `envconfig:"CHECKOUT_DEFAULT_PAYMENT_METHOD" default:"CARD"`
	SessionLockTTL       time.Duration `envconfig:"CHECKOUT_SESSION_LOCK_TTL" default:"2m"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type AMQPConfig struct {
	URL            string        `envconfig:"AMQP_URL" default:""`
	Queue          string        `envconfig:"AMQP_PROGRESS_QUEUE" default:"checkout.progress"`
	PublishTimeout time.Duration `envconfig:"AMQP_PUBLISH_TIMEOUT" default:"3s"`
}

func (c AMQPConfig) Enabled() bool {
	return c.URL != ""
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// LoadConfig reads an optional .env file, then the process environment.
// Variables already set in the environment win over .env entries.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Upper bounds for one checkout: create, payment, itinerary, confirm and the
// FAILED update, plus one progress event per stage reached.
const (
	maxCheckoutCalls  = 5
	maxProgressEvents = 4
	sessionLockMargin = 10 * time.Second
)

// CheckoutBudget is the longest a single checkout can hold its session lock.
func (c Config) CheckoutBudget() time.Duration {
	budget := maxCheckoutCalls*c.Services.Timeout + sessionLockMargin
	if c.AMQP.Enabled() {
		budget += maxProgressEvents * c.AMQP.PublishTimeout
	}
	return budget
}

// Validate rejects a session lock that could expire while its checkout is still running.
func (c Config) Validate() error {
	if c.Services.Timeout <= 0 {
		return fmt.Errorf("SERVICE_TIMEOUT must be positive, got %s", c.Services.Timeout)
	}
	if budget := c.CheckoutBudget(); c.Checkout.SessionLockTTL <= budget {
		return fmt.Errorf("CHECKOUT_SESSION_LOCK_TTL (%s) must exceed the worst-case checkout time (%s)",
			c.Checkout.SessionLockTTL, budget)
	}
	return nil
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
			TimeZone: "UTC",
			MaxConns: 4,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Checkout-Session"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        time.Hour,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Services: ServicesConfig{
			BookingURL:   "http://localhost:9001",
			PaymentURL:   "http://localhost:9002",
			ItineraryURL: "http://localhost:9003",
			Timeout:      2 * time.Second,
		},
		Checkout: CheckoutConfig{
			DefaultPaymentMethod: "CARD",
			SessionLockTTL:       time.Minute,
		},
	}
}
