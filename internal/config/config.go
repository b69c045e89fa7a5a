package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application, database, cache, upstream, auth and messaging settings.
type Config struct {
	AppHost        string // HTTP listen host
	AppPort        string // HTTP listen port
	LogLevel       string // debug | info | warn | error
	LogDevelopment bool   // colored console logs instead of JSON
	MigrateOnStart bool   // apply pending schema migrations before serving

	PostgresHost         string
	PostgresPort         int
	PostgresUser         string
	PostgresPassword     string
	PostgresDB           string
	PostgresMaxOpenConns int
	PostgresMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	SummaryCacheTTL   time.Duration // lifetime of cached recipe summaries

	UpstreamBaseURL   string        // Spoonacular (RapidAPI) base URL
	UpstreamAPIKey    string        // x-rapidapi-key
	UpstreamHost      string        // x-rapidapi-host
	UpstreamTimeout   time.Duration // per-call timeout
	UpstreamRate      float64       // requests per second
	UpstreamBurst     int           // limiter burst
	EnrichFanOutLimit int           // concurrent summary calls per search

	JWTSecretKey string
	JWTExp       time.Duration

	KafkaBrokers []string // empty disables event publishing
	KafkaTopic   string
}

// PostgresDSN builds the pgx connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// Load reads environment variables from the file at path (if it exists)
// and fills the configuration, falling back to defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	l := &loader{}
	cfg := &Config{
		AppHost:        getEnv("APP_HOST", "localhost"),
		AppPort:        getEnv("APP_PORT", "8080"),
		LogLevel:       getEnv("APP_LOG_LEVEL", "info"),
		LogDevelopment: l.bool("APP_LOG_DEVELOPMENT", false),
		MigrateOnStart: l.bool("APP_MIGRATE_ON_START", true),

		PostgresHost:         getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:         l.int("POSTGRES_PORT", 5432),
		PostgresUser:         getEnv("POSTGRES_USER", "user"),
		PostgresPassword:     getEnv("POSTGRES_PASSWORD", "password"),
		PostgresDB:           getEnv("POSTGRES_DB", "recipe"),
		PostgresMaxOpenConns: l.int("POSTGRES_MAX_OPEN_CONNS", 16),
		PostgresMaxIdleConns: l.int("POSTGRES_MAX_IDLE_CONNS", 8),

		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         l.int("REDIS_PORT", 6379),
		RedisDB:           l.int("REDIS_DB", 0),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisPoolSize:     l.int("REDIS_POOL_SIZE", 10),
		RedisMinIdleConns: l.int("REDIS_MIN_IDLE_CONNS", 2),
		SummaryCacheTTL:   l.duration("SUMMARY_CACHE_TTL", 24*time.Hour),

		UpstreamBaseURL:   getEnv("SPOONACULAR_BASE_URL", "https://spoonacular-recipe-food-nutrition-v1.p.rapidapi.com"),
		UpstreamAPIKey:    getEnv("SPOONACULAR_API_KEY", ""),
		UpstreamHost:      getEnv("SPOONACULAR_API_HOST", "spoonacular-recipe-food-nutrition-v1.p.rapidapi.com"),
		UpstreamTimeout:   l.duration("SPOONACULAR_TIMEOUT", 5*time.Second),
		UpstreamRate:      l.float("SPOONACULAR_RATE_PER_SECOND", 5),
		UpstreamBurst:     l.int("SPOONACULAR_BURST", 10),
		EnrichFanOutLimit: l.int("SEARCH_FANOUT_LIMIT", 8),

		JWTSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
		JWTExp:       time.Duration(l.int("JWT_EXP_SECOND", 3600)) * time.Second,

		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "recipe-bookmarks"),
	}
	if l.err != nil {
		return nil, l.err
	}

	if cfg.EnrichFanOutLimit < 1 {
		return nil, fmt.Errorf("SEARCH_FANOUT_LIMIT must be positive, got %d", cfg.EnrichFanOutLimit)
	}
	if cfg.UpstreamTimeout <= 0 {
		return nil, fmt.Errorf("SPOONACULAR_TIMEOUT must be positive, got %s", cfg.UpstreamTimeout)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// loader keeps the first parse error so Load can fill every field in one pass.
type loader struct {
	err error
}

func (l *loader) int(key string, def int) int {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(def)))
	if err != nil {
		l.fail(key, err)
		return def
	}
	return v
}

func (l *loader) float(key string, def float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, strconv.FormatFloat(def, 'f', -1, 64)), 64)
	if err != nil {
		l.fail(key, err)
		return def
	}
	return v
}

func (l *loader) bool(key string, def bool) bool {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(def)))
	if err != nil {
		l.fail(key, err)
		return def
	}
	return v
}

func (l *loader) duration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, def.String()))
	if err != nil {
		l.fail(key, err)
		return def
	}
	return v
}

func (l *loader) fail(key string, err error) {
	if l.err == nil {
		l.err = fmt.Errorf("invalid %s: %w", key, err)
	}
}
