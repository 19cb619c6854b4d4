package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config groups are embedded so every variable keeps its flat name
// (DB_HOST rather than DB_DB_HOST).
type Config struct {
	App
	DB
	Redis
	Kafka
	Auth
	Mail
	HTTP
	Identity
}

type App struct {
	Env           string `envconfig:"APP_ENV" default:"development"`
	Port          string `envconfig:"PORT" default:"3000"`
	BaseURL       string `envconfig:"BASE_URL" default:"http://localhost:3000"`
	DevPass       string `envconfig:"DEV_PASS"`
	OpsEmail      string `envconfig:"OPS_EMAIL"`
	RunMigrations bool   `envconfig:"RUN_MIGRATIONS" default:"false"`
}

type DB struct {
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       string `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER" default:"postgres"`
	Password   string `envconfig:"DB_PASSWORD"`
	Name       string `envconfig:"DB_NAME" default:"bimasoft"`
	SSLMode    string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxRetries int    `envconfig:"DB_MAX_RETRIES" default:"5"`
}

type Redis struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	Database int    `envconfig:"REDIS_DB" default:"0"`
}

type Kafka struct {
	Brokers       []string      `envconfig:"KAFKA_BROKERS"`
	ConsumerGroup string        `envconfig:"KAFKA_CONSUMER_GROUP" default:"bimasoft-notifications"`
	PollInterval  time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"3s"`
}

type Auth struct {
	APIKey       string        `envconfig:"API_KEY"`
	LookupAPIKey string        `envconfig:"LOOKUP_API_KEY"`
	JWTSecret    string        `envconfig:"JWT_SECRET"`
	JWTTTL       time.Duration `envconfig:"JWT_TTL" default:"24h"`
}

type Identity struct {
	Provider       string `envconfig:"IDENTITY_PROVIDER" default:"local"`
	KratosPublic   string `envconfig:"KRATOS_PUBLIC_URL" default:"http://localhost:4433"`
	KratosAdmin    string `envconfig:"KRATOS_ADMIN_URL" default:"http://localhost:4434"`
	KratosSchemaID string `envconfig:"KRATOS_SCHEMA_ID" default:"default"`
}

type Mail struct {
	SendGridAPIKey string `envconfig:"SENDGRID_API_KEY"`
	From           string `envconfig:"MAIL_FROM" default:"no-reply@bimasoft.co.tz"`
	FromName       string `envconfig:"MAIL_FROM_NAME" default:"BimaSoft"`
}

type HTTP struct {
	CORSAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	RateLimitRPS       float64       `envconfig:"RATE_LIMIT_RPS" default:"10"`
	RateLimitBurst     int           `envconfig:"RATE_LIMIT_BURST" default:"20"`
	LookupTimeout      time.Duration `envconfig:"LOOKUP_HTTP_TIMEOUT" default:"10s"`
	VehicleCacheTTL    time.Duration `envconfig:"VEHICLE_CACHE_TTL" default:"6h"`
	GeoIPURL           string        `envconfig:"GEOIP_URL" default:"http://ip-api.com/json/%s"`
	NHTSAURL           string        `envconfig:"NHTSA_URL" default:"https://vpic.nhtsa.dot.gov/api/vehicles"`
	CarQueryURL        string        `envconfig:"CARQUERY_URL" default:"https://www.carqueryapi.com/api/0.3/"`
	TIRAURL            string        `envconfig:"TIRA_VERIFY_URL" default:"https://tiramis.tira.go.tz/covernote/api/public/portal/verify"`
}

var (
	once   sync.Once
	cached *Config
	errCfg error
)

// Load reads an optional .env file and then the process environment. The
// result is memoized for the life of the process.
func Load() (*Config, error) {
	once.Do(func() {
		_ = godotenv.Load()
		cached, errCfg = Parse()
	})
	return cached, errCfg
}

// Parse reads the process environment without memoization.
func Parse() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Identity.Provider {
	case "local":
		if c.Auth.JWTSecret == "" && c.IsProduction() {
			return fmt.Errorf("JWT_SECRET is required for the local identity provider")
		}
	case "kratos":
	default:
		return fmt.Errorf("unknown IDENTITY_PROVIDER %q", c.Identity.Provider)
	}
	if c.IsProduction() && c.Auth.APIKey == "" {
		return fmt.Errorf("API_KEY is required in production")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DB.Host, c.DB.User, c.DB.Password, c.DB.Name, c.DB.Port, c.DB.SSLMode,
	)
}

// MigrationURL is the DSN in URL form, as golang-migrate expects it.
func (c *Config) MigrationURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name, c.DB.SSLMode,
	)
}

// LoginURL is the address sent to newly provisioned admins.
func (c *Config) LoginURL() string {
	return strings.TrimRight(c.App.BaseURL, "/") + "/authentication/login"
}
