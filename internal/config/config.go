package config

import (
	"strconv"
	"time"
)

type HTTPConfig struct {
	Host           string        `env:"HOST" envDefault:"0.0.0.0"`
	Port           int           `env:"PORT" envDefault:"8080"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`
	ReadTimeout    time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout   time.Duration `env:"WRITE_TIMEOUT" envDefault:"65s"`
	IdleTimeout    time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
}

type PostgresConfig struct {
	// Either DSN directly (e.g. from AWS RDS secret),
	// or components to build it if DSN is empty.
	DSN      string `env:"DSN"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"5432"`
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD"`
	DBName   string `env:"DBNAME" envDefault:"users"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`

	// Pool sizing
	MaxConns          int32         `env:"MAX_CONNS" envDefault:"10"`
	MinConns          int32         `env:"MIN_CONNS" envDefault:"0"`
	MaxConnLifetime   time.Duration `env:"MAX_CONN_LIFETIME" envDefault:"30m"`
	MaxConnIdleTime   time.Duration `env:"MAX_CONN_IDLE_TIME" envDefault:"10m"`
	HealthCheckPeriod time.Duration `env:"HEALTH_CHECK_PERIOD" envDefault:"30s"`

	// LogQueries routes every statement through the app logger at debug level.
	LogQueries bool `env:"LOG_QUERIES" envDefault:"false"`
}

func (c PostgresConfig) EffectiveDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "postgres://" + c.User + ":" + c.Password +
		"@" + c.Host + ":" + strconv.Itoa(c.Port) +
		"/" + c.DBName + "?sslmode=" + c.SSLMode
}

type KafkaConfig struct {
	Enabled     bool     `env:"ENABLED" envDefault:"false"`
	Brokers     []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	ClientID    string   `env:"CLIENT_ID" envDefault:"users-api"`
	GroupID     string   `env:"GROUP_ID" envDefault:"users-api-audit"`
	TopicPrefix string   `env:"TOPIC_PREFIX"`
}

// ObservabilityConfig Observability / telemetry configuration
type ObservabilityConfig struct {
	Enabled     bool   `env:"ENABLED" envDefault:"false"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"users-api"`
	ServiceEnv  string `env:"SERVICE_ENV" envDefault:"Development"`
	// e.g. "otel-collector:4317"
	OtelEndpoint string `env:"ENDPOINT"`
}

type LogConfig struct {
	Level string `env:"LEVEL" envDefault:"info"`
}

type Config struct {
	// Development, Staging, Production...
	Environment string `env:"APP_ENV" envDefault:"Development"`

	HTTP          HTTPConfig          `envPrefix:"HTTP_"`
	Postgres      PostgresConfig      `envPrefix:"PG_"`
	Kafka         KafkaConfig         `envPrefix:"KAFKA_"`
	Observability ObservabilityConfig `envPrefix:"OTEL_"`
	Log           LogConfig           `envPrefix:"LOG_"`
}
