package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Postgres Postgres `validate:"required"`

	Cache Cache

	Auth Auth

	Stripe Stripe `validate:"required"`

	Orders Orders

	Kafka Kafka
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,numeric"`

	ReadHeaderTimeout time.Duration `validate:"gte=0"`
	ShutdownTimeout   time.Duration `validate:"gt=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

// Auth configures bearer token validation. An empty Secret disables it and
// every caller is treated as anonymous.
type Auth struct {
	Secret   string `validate:"omitempty,min=16"`
	Issuer   string `validate:"required_with=Secret"`
	Audience string `validate:"required_with=Secret"`
}

type Stripe struct {
	SecretKey     string `validate:"required"`
	WebhookSecret string `validate:"required"`
	// APIURL overrides the processor endpoint, used against local mocks.
	APIURL string `validate:"omitempty,url"`
}

type Orders struct {
	ReserveStock   bool
	NumberAttempts int `validate:"gte=1,lte=20"`
}

type Kafka struct {
	Enabled bool

	GroupID       string   `validate:"required_if=Enabled true"`
	Brokers       []string `validate:"required_if=Enabled true,dive,hostname_port"`
	PaymentsTopic string   `validate:"required_if=Enabled true"`
	OrdersTopic   string   `validate:"required_if=Enabled true"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),

			ReadHeaderTimeout: envDuration("HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
			ShutdownTimeout:   envDuration("HTTP_SHUTDOWN_TIMEOUT", 5*time.Second),
		},

		Cors: CORS{
			AllowedOrigins: envList("ALLOWED_CORS_ORIGINS", "http://localhost:3000"),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "printshop"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		Auth: Auth{
			Secret:   env("JWT_SECRET", ""),
			Issuer:   env("JWT_ISSUER", "printshop"),
			Audience: env("JWT_AUDIENCE", "printshop-api"),
		},

		Stripe: Stripe{
			SecretKey:     env("STRIPE_SECRET_KEY", ""),
			WebhookSecret: env("STRIPE_WEBHOOK_SECRET", ""),
			APIURL:        env("STRIPE_API_URL", ""),
		},

		Orders: Orders{
			ReserveStock:   envBool("ORDERS_RESERVE_STOCK", false),
			NumberAttempts: envInt("ORDERS_NUMBER_ATTEMPTS", 5),
		},

		Kafka: Kafka{
			Enabled:       envBool("KAFKA_ENABLED", false),
			GroupID:       env("KAFKA_GROUP_ID", "order-service"),
			Brokers:       envList("KAFKA_BROKERS", "localhost:9092"),
			PaymentsTopic: env("KAFKA_PAYMENTS_TOPIC", "payments"),
			OrdersTopic:   env("KAFKA_ORDERS_TOPIC", "orders"),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envList(key string, fallback string) []string {
	var list []string
	for _, v := range strings.Split(env(key, fallback), ",") {
		if v = strings.TrimSpace(v); v != "" {
			list = append(list, v)
		}
	}
	return list
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
