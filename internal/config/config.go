package config // package config loads application configuration from environment variables

import (
	"os"
)

// Config holds all runtime configuration values. Each field maps to an
// environment variable. Unlike the HTTP port, the database settings
// are optional: the database is a diagnostic-only dependency and the
// service must come up without one.
type Config struct {
	Env                 string // application environment (e.g. "dev", "prod")
	Port                string // HTTP port to listen on
	DBUser              string // database username (optional)
	DBPass              string // database password (optional)
	DBHost              string // database host address (optional)
	DBPort              string // database port number
	DBName              string // database name (optional)
	ChatConsumerEnabled bool   // run the chat.handled queue consumer in-process
}

// Load reads configuration from the environment, applying defaults
// where a variable is unset. Nothing here is fatal: every dependency
// the variables describe is optional and probed at use time.
func Load() Config {
	return Config{
		Env:                 getenv("APP_ENV", "dev"),
		Port:                getenv("APP_PORT", "8000"),
		DBUser:              os.Getenv("DB_USER"),
		DBPass:              os.Getenv("DB_PASS"),
		DBHost:              os.Getenv("DB_HOST"),
		DBPort:              getenv("DB_PORT", "3306"),
		DBName:              os.Getenv("DB_NAME"),
		ChatConsumerEnabled: envBool("CHAT_CONSUMER_ENABLED", false),
	}
}

// DatabaseConfigured reports whether enough settings are present to
// attempt a database connection. The password stays optional.
func (c Config) DatabaseConfigured() bool {
	return c.DBUser != "" && c.DBHost != "" && c.DBName != ""
}

// getenv retrieves an environment variable, falling back to def when
// the variable is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}
