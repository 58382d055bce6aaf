package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort  string
	LogLevel string

	MySQLHost     string
	MySQLPort     string
	MySQLDB       string
	MySQLUser     string
	MySQLPass     string
	DBAutoMigrate bool

	RedisAddr string
	RedisDB   int

	CacheTTLSecs int
	IdempTTLSecs int

	// Empty disables the broker; events are then only logged.
	RabbitURL       string
	NotifyExchange  string
	NotifyTimeoutMS int
}

func getenv(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
		slog.Warn("config: ignoring non-integer value", "key", k, "value", v)
	}
	return d
}

func getenvBool(k string, d bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
		slog.Warn("config: ignoring non-boolean value", "key", k, "value", v)
	}
	return d
}

// Load reads a .env file when present, then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		slog.Info("config: loaded .env")
	}

	return &Config{
		AppPort:  getenv("APP_PORT", "8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		MySQLHost:     getenv("MYSQL_HOST", "mysql"),
		MySQLPort:     getenv("MYSQL_PORT", "3306"),
		MySQLDB:       getenv("MYSQL_DB", "loanflow"),
		MySQLUser:     getenv("MYSQL_USER", "loanflow"),
		MySQLPass:     getenv("MYSQL_PASS", "loanflow"),
		DBAutoMigrate: getenvBool("DB_AUTO_MIGRATE", false),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		CacheTTLSecs: getenvInt("CACHE_TTL_SECONDS", 600),
		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		RabbitURL:       getenv("RABBITMQ_URL", ""),
		NotifyExchange:  getenv("NOTIFY_EXCHANGE", "loan.events"),
		NotifyTimeoutMS: getenvInt("NOTIFY_TIMEOUT_MS", 3000),
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.CacheTTLSecs <= 0 {
		return fmt.Errorf("CACHE_TTL_SECONDS must be positive, got %d", c.CacheTTLSecs)
	}
	if c.IdempTTLSecs <= 0 {
		return fmt.Errorf("IDEMPOTENCY_TTL_SECONDS must be positive, got %d", c.IdempTTLSecs)
	}
	if c.NotifyTimeoutMS <= 0 {
		return fmt.Errorf("NOTIFY_TIMEOUT_MS must be positive, got %d", c.NotifyTimeoutMS)
	}
	return nil
}

func (c *Config) CacheTTL() time.Duration       { return time.Duration(c.CacheTTLSecs) * time.Second }
func (c *Config) IdempotencyTTL() time.Duration { return time.Duration(c.IdempTTLSecs) * time.Second }
func (c *Config) NotifyTimeout() time.Duration  { return time.Duration(c.NotifyTimeoutMS) * time.Millisecond }

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME; loc=UTC keeps stored timestamps comparable
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
