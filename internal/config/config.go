package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	AppEnv string

	DBDriver    string
	PostgresURL string
	SQLitePath  string

	JWTSecret   string
	JWTTTL      time.Duration
	AdminEmails []string

	HomePageSize int
	ListPageSize int

	Locale   string
	Timezone string

	WriteRatePerMinute int
	WriteRateBurst     int
}

// Load reads .env when present and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	return &Config{
		Port:   envOr("PORT", "8080"),
		AppEnv: envOr("APP_ENV", "development"),

		DBDriver:    envOr("DB_DRIVER", "postgres"),
		PostgresURL: os.Getenv("POSTGRES_URL"),
		SQLitePath:  envOr("SQLITE_PATH", "vehireview.db"),

		JWTSecret:   envOr("JWT_SECRET", "change-me"),
		JWTTTL:      durationOr("JWT_TTL", time.Hour),
		AdminEmails: listOr("ADMIN_EMAILS"),

		HomePageSize: intOr("HOME_PAGE_SIZE", 3),
		ListPageSize: intOr("LIST_PAGE_SIZE", 5),

		Locale:   envOr("APP_LOCALE", "en"),
		Timezone: envOr("APP_TIMEZONE", "UTC"),

		WriteRatePerMinute: intOr("WRITE_RATE_PER_MINUTE", 30),
		WriteRateBurst:     intOr("WRITE_RATE_BURST", 10),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsAdminEmail reports whether accounts registered with email get the admin role.
func (c *Config) IsAdminEmail(email string) bool {
	for _, admin := range c.AdminEmails {
		if strings.EqualFold(admin, email) {
			return true
		}
	}
	return false
}

func envOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func listOr(key string) []string {
	var values []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func intOr(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func durationOr(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
