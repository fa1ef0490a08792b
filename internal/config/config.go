package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
	StorageDriverFile     = "file"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Storage Storage `validate:"required"`

	// Проверяются отдельно: нужны только при соответствующих настройках.
	Postgres Postgres `validate:"-"`
	Kafka    Kafka    `validate:"-"`

	Catalog  Catalog `validate:"required"`
	Cache    Cache
	Payments Payments
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,numeric"`
}

type Storage struct {
	Driver     string `validate:"required,oneof=postgres sqlite file"`
	FilePath   string `validate:"required_if=Driver file"`
	SQLitePath string `validate:"required_if=Driver sqlite"`
}

type Kafka struct {
	Enabled bool
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
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

type Catalog struct {
	ProductsPath string `validate:"required"`
	PrivateDir   string `validate:"required"`
}

type Cache struct {
	Capacity int           `validate:"gte=0"`
	TTL      time.Duration `validate:"gte=0"`
}

type Payments struct {
	// Если задан, approve требует заголовок X-Webhook-Secret с этим значением.
	WebhookSecret string
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "3333"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3333"), ","),
		},

		Storage: Storage{
			Driver:     env("STORAGE_DRIVER", StorageDriverFile),
			FilePath:   env("ORDERS_FILE", "data/orders.json"),
			SQLitePath: env("SQLITE_PATH", "data/orders.db"),
		},

		Kafka: Kafka{
			Enabled: envBool("KAFKA_ENABLED", false),
			GroupID: env("KAFKA_GROUP_ID", "prontix-store"),
			Topic:   env("KAFKA_TOPIC", "payments"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "store"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Catalog: Catalog{
			ProductsPath: env("CATALOG_PATH", "data/products.json"),
			PrivateDir:   env("PRIVATE_FILES_DIR", "private_files"),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		Payments: Payments{
			WebhookSecret: env("PAYMENT_WEBHOOK_SECRET", ""),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Storage.Driver == StorageDriverPostgres {
		if err := validate.Struct(c.Postgres); err != nil {
			return err
		}
	}
	if c.Kafka.Enabled {
		if err := validate.Struct(c.Kafka); err != nil {
			return err
		}
	}
	return nil
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
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
