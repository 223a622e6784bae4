package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries every runtime setting, resolved once at startup and
// passed explicitly into the components that need it.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	CORS     CORSConfig
	Sync     SyncConfig
	Cron     CronConfig
}

type ServerConfig struct {
	Host string
	Port string
}

type DatabaseConfig struct {
	Driver   string // postgres or sqlite
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	Path     string // sqlite file path, :memory: for tests
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

// JWTConfig holds both signing secrets. The original deployment used
// one key for both schemes; keeping them separate fields allows a
// split without code changes.
type JWTConfig struct {
	AdminSecret   string
	UserSecret    string
	AdminDuration time.Duration
	UserDuration  time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type SyncConfig struct {
	FakeStoreURL string
}

type CronConfig struct {
	StatsSchedule string
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	adminDuration, err := time.ParseDuration(getEnv("ADMIN_TOKEN_DURATION", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_TOKEN_DURATION: %w", err)
	}

	userDuration, err := time.ParseDuration(getEnv("USER_TOKEN_DURATION", "168h")) // 7 days
	if err != nil {
		return nil, fmt.Errorf("invalid USER_TOKEN_DURATION: %w", err)
	}

	secret := getEnv("SECRET_KEY", "sua_chave_secreta_super_segura_2024")

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "5000"),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "loja"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Path:     getEnv("DB_PATH", "loja.db"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Enabled: getEnvBool("KAFKA_ENABLED", false),
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   getEnv("KAFKA_TOPIC", "pedido_events"),
		},
		JWT: JWTConfig{
			AdminSecret:   secret,
			UserSecret:    getEnv("JWT_SECRET_KEY", secret),
			AdminDuration: adminDuration,
			UserDuration:  userDuration,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS",
				"http://localhost:8081,http://localhost:3000,http://127.0.0.1:8081,http://127.0.0.1:3000")),
		},
		Sync: SyncConfig{
			FakeStoreURL: getEnv("FAKE_STORE_API", "https://fakestoreapi.com"),
		},
		Cron: CronConfig{
			StatsSchedule: getEnv("STATS_CRON_SCHEDULE", "@every 1m"),
		},
	}, nil
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Address returns the Redis address in host:port form.
func (c *RedisConfig) Address() string {
	return c.Host + ":" + c.Port
}

// Address returns the server address in host:port form.
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
