// Package config loads application configuration from environment
// variables.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable: strings for identifiers
// and secrets, ints for durations and costs.
type Config struct {
	Env               string // application environment (e.g. "dev", "prod")
	Port              string // HTTP port to listen on
	DBUser            string // database username
	DBPass            string // database password (optional)
	DBHost            string // database host address
	DBPort            string // database port number
	DBName            string // database name
	DBMaxOpenConns    int    // connection pool size
	DBConnLifeMinutes int    // max lifetime of a pooled connection
	JWTSecret         string // secret used to sign API tokens
	APITokenTTLDays   int    // API token time-to-live in days
	BcryptCost        int    // bcrypt cost for password hashing
	GitHubUser        string // account handle for the public projects page
	DataDir           string // directory backing the local key-value store
	BaseURL           string // public base URL used in password-reset links
}

// Load reads configuration values from environment variables and
// returns a Config.  Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:               must("APP_ENV"),
		Port:              must("APP_PORT"),
		DBUser:            must("DB_USER"),
		DBPass:            os.Getenv("DB_PASS"), // empty allowed
		DBHost:            must("DB_HOST"),
		DBPort:            must("DB_PORT"),
		DBName:            must("DB_NAME"),
		DBMaxOpenConns:    intOr("DB_MAX_OPEN_CONNS", 25),
		DBConnLifeMinutes: intOr("DB_CONN_LIFE_MINUTES", 30),
		JWTSecret:         must("JWT_SECRET"),
		APITokenTTLDays:   intOr("API_TOKEN_TTL_DAYS", 5),
		BcryptCost:        intOr("BCRYPT_COST", 10),
		GitHubUser:        strOr("GITHUB_USERNAME", "tsegaye25"),
		DataDir:           strOr("DATA_DIR", "data"),
		BaseURL:           strOr("BASE_URL", "http://localhost:3000"),
	}
}

// must retrieves the value of a required environment variable.  If
// the variable is unset or empty, the application logs a fatal error
// and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// strOr returns the variable's value or a default when unset.
func strOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// intOr is like strOr for integers; unparseable values fall back to
// the default.
func intOr(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: invalid int for %s: %q, using %d", key, v, def)
		return def
	}
	return n
}
