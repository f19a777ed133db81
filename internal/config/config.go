package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Seed credentials for the initial super_admin account. They are documented,
// not secret: the account is re-applied with these values on every start so it
// can never be lost or locked out.
const (
	DefaultAdminUsername = "niraj2546"
	DefaultAdminPhone    = "7070294070"
	DefaultAdminPassword = "0852963741@Ap"
)

type Config struct {
	ServerPort int
	LogLevel   string

	// DatabaseURL selects postgres when set; otherwise SQLitePath is used.
	DatabaseURL string
	SQLitePath  string

	JWTSecret []byte

	AdminUsername string
	AdminPhone    string
	AdminPassword string

	KafkaBrokers []string
	ESURL        string
	ESUser       string
	ESPassword   string

	// CheckoutDelay simulates gateway latency before a purchase completes.
	CheckoutDelay time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	cfg := &Config{
		ServerPort: EnvIntDefault("SERVER_PORT", 8080),
		LogLevel:   EnvDefault("LOG_LEVEL", "info"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  EnvDefault("SQLITE_PATH", "cardshop.db"),

		JWTSecret: []byte(os.Getenv("JWT_SECRET")),

		AdminUsername: EnvDefault("ADMIN_USERNAME", DefaultAdminUsername),
		AdminPhone:    EnvDefault("ADMIN_PHONE", DefaultAdminPhone),
		AdminPassword: EnvDefault("ADMIN_PASSWORD", DefaultAdminPassword),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),
		ESURL:        os.Getenv("ES_URL"),
		ESUser:       os.Getenv("ES_USER"),
		ESPassword:   os.Getenv("ES_PASSWORD"),

		CheckoutDelay: time.Duration(EnvIntDefault("CHECKOUT_DELAY_MS", 1500)) * time.Millisecond,
	}

	return cfg, nil
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func MustNonEmptyBytes(value []byte, envName string) {
	if len(value) == 0 {
		log.Fatalf("missing required env %s", envName)
	}
}
