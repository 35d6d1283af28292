package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// site (cmd/web)
	AppPort           string
	APIBaseURL        string
	APITimeout        time.Duration
	SessionCookieName string
	CookieSecure      bool
	ListCacheTTL      time.Duration
	SubmissionTTL     time.Duration

	RedisAddr string
	RedisDB   int

	// reference api (cmd/api)
	APIPort    string
	DBDriver   string
	DBLogLevel string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	PostgresDSN string
	SQLitePath  string

	JWTSecret string
	JWTExpiry time.Duration

	SeedAdminName     string
	SeedAdminEmail    string
	SeedAdminPassword string

	SendGridAPIKey string
	MailFrom       string
	MailFromName   string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getint(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func getbool(k string, d bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return d
}

// Load reads the environment, after merging a .env file when one exists.
func Load() *Config {
	// a missing .env is fine; real env vars win either way
	_ = godotenv.Load()

	c := &Config{
		AppPort:           getenv("APP_PORT", "8080"),
		APIBaseURL:        strings.TrimRight(getenv("API_BASE_URL", "http://localhost:8081"), "/"),
		APITimeout:        time.Duration(getint("API_TIMEOUT_SECONDS", 15)) * time.Second,
		SessionCookieName: getenv("SESSION_COOKIE_NAME", "loan_admin_token"),
		CookieSecure:      getbool("COOKIE_SECURE", false),
		ListCacheTTL:      time.Duration(getint("LIST_CACHE_TTL_SECONDS", 300)) * time.Second,
		SubmissionTTL:     time.Duration(getint("SUBMISSION_TTL_SECONDS", 600)) * time.Second,

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getint("REDIS_DB", 0),

		APIPort:    getenv("API_PORT", "8081"),
		DBDriver:   strings.ToLower(getenv("DB_DRIVER", "mysql")),
		DBLogLevel: strings.ToLower(getenv("DB_LOG_LEVEL", "warn")),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "loan_portal"),
		MySQLUser: getenv("MYSQL_USER", "loan_portal"),
		MySQLPass: getenv("MYSQL_PASS", "loan_portal"),

		PostgresDSN: getenv("POSTGRES_DSN", ""),
		SQLitePath:  getenv("SQLITE_PATH", "loan_portal.db"),

		JWTSecret: getenv("JWT_SECRET", ""),
		JWTExpiry: time.Duration(getint("JWT_EXPIRATION_HOURS", 24)) * time.Hour,

		SeedAdminName:     getenv("SEED_ADMIN_NAME", "Administrator"),
		SeedAdminEmail:    getenv("SEED_ADMIN_EMAIL", ""),
		SeedAdminPassword: getenv("SEED_ADMIN_PASSWORD", ""),

		SendGridAPIKey: getenv("SENDGRID_API_KEY", ""),
		MailFrom:       getenv("MAIL_FROM", "no-reply@loan-portal.local"),
		MailFromName:   getenv("MAIL_FROM_NAME", "Loan Portal"),
	}
	return c
}

// Validate checks what the site binary needs.
func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid API_BASE_URL %q", c.APIBaseURL)
	}
	if c.SessionCookieName == "" {
		return errors.New("missing SESSION_COOKIE_NAME")
	}
	if c.APITimeout <= 0 {
		return errors.New("API_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// ValidateAPI checks what the reference api binary needs.
func (c *Config) ValidateAPI() error {
	if c.APIPort == "" {
		return errors.New("missing API_PORT")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	switch c.DBDriver {
	case "mysql":
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		// ensure port is valid
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("missing POSTGRES_DSN")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("missing SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (mysql|postgres|sqlite)", c.DBDriver)
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=Local&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	switch c.DBDriver {
	case "postgres":
		return c.PostgresDSN
	case "sqlite":
		return c.SQLitePath
	default:
		return c.MySQLDSN()
	}
}
