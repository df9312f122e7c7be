package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Database and JWT values are required; the
// LINE credentials are required because login is impossible without
// them; upload settings fall back to sensible defaults.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	DBUser         string // database username
	DBPass         string // database password (optional)
	DBHost         string // database host address
	DBPort         string // database port number
	DBName         string // database name
	JWTSecret      string // secret used to sign session JWTs
	SessionTTLDays int    // session cookie/token lifetime in days
	LineChannelID  string // LINE Login channel id
	LineSecret     string // LINE Login channel secret
	LineRedirect   string // redirect URI registered with the LINE channel
	UploadDir      string // directory for uploaded slider images
	UploadBaseURL  string // public URL prefix for uploaded files
}

// Load reads configuration values from environment variables and returns
// a Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		DBUser:         must("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"), // empty allowed
		DBHost:         must("DB_HOST"),
		DBPort:         must("DB_PORT"),
		DBName:         must("DB_NAME"),
		JWTSecret:      must("JWT_SECRET"),
		SessionTTLDays: intOr("SESSION_TTL_DAYS", 7),
		LineChannelID:  must("LINE_LOGIN_CHANNEL_ID"),
		LineSecret:     must("LINE_LOGIN_CHANNEL_SECRET"),
		LineRedirect:   must("LINE_LOGIN_REDIRECT_URI"),
		UploadDir:      getenv("UPLOAD_DIR", "public/uploads"),
		UploadBaseURL:  getenv("UPLOAD_BASE_URL", "/uploads"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// intOr retrieves an integer environment variable, returning def when
// the variable is unset. A malformed value is a configuration mistake
// and exits like a missing required variable.
func intOr(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
