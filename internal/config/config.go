package config // package config loads application configuration from environment variables

import (
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time parses durations
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Every value has a default so the service starts
// with no environment at all; the defaults mirror the constants of the
// original deployment (port 5000, two-hour tokens, bcrypt cost 10).
type Config struct {
	Env          string        // application environment (e.g. "dev", "prod")
	Port         string        // HTTP port to listen on
	JWTSecret    string        // secret used to sign bearer tokens
	AccessTTLMin int           // access token time-to-live in minutes
	BcryptCost   int           // bcrypt cost for password hashing
	FlightsTTL   time.Duration // lifetime of the cached flight listing
}

// Load reads configuration values from environment variables and returns a
// Config. Unset variables fall back to their defaults.
func Load() Config {
	return Config{
		Env:          getenv("APP_ENV", "dev"),
		Port:         getenv("APP_PORT", "5000"),
		JWTSecret:    getenv("JWT_SECRET", "flight-secret-key"),
		AccessTTLMin: getint("ACCESS_TOKEN_TTL_MIN", 120),
		BcryptCost:   getint("BCRYPT_COST", 10),
		FlightsTTL:   getdur("FLIGHTS_CACHE_TTL", 30*time.Second),
	}
}

// getenv returns the value of an environment variable or def when unset.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getint is like getenv but converts the value to an integer, falling back
// to def when the variable is unset or not a valid number.
func getint(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// getdur is like getenv but parses the value as a time.Duration.
func getdur(key string, def time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
