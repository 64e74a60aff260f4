package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Opportunity store sources.
const (
	OpportunitySourceSeed     = "seed"
	OpportunitySourceDatabase = "database"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Database      DatabaseConfig
	Redis         RedisConfig
	JWT           JWTConfig
	CORS          CORSConfig
	Log           LogConfig
	Opportunities OpportunitiesConfig
	Payments      PaymentsConfig
	Handoff       HandoffConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Issuer     string
	Expiration time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// OpportunitiesConfig controls where the opportunity list comes from and how it is matched.
type OpportunitiesConfig struct {
	Source                string
	SeedFile              string
	CacheTTL              time.Duration
	LocationCaseSensitive bool
}

// PaymentsConfig carries the simulated gateway credentials.
type PaymentsConfig struct {
	KeyID       string
	KeySecret   string
	Currency    string
	MerchantTag string
}

// HandoffConfig sizes the queue that forwards selections and contact messages.
type HandoffConfig struct {
	Workers    int
	BufferSize int
	MaxRetries int
	RetryDelay time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Enabled:  v.GetBool("ENABLE_CACHE"),
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Issuer:     v.GetString("JWT_ISSUER"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	source := strings.ToLower(strings.TrimSpace(v.GetString("OPPORTUNITY_SOURCE")))
	if source != OpportunitySourceDatabase {
		source = OpportunitySourceSeed
	}
	cfg.Opportunities = OpportunitiesConfig{
		Source:                source,
		SeedFile:              v.GetString("OPPORTUNITY_SEED_FILE"),
		CacheTTL:              parseDuration(v.GetString("OPPORTUNITY_CACHE_TTL"), 5*time.Minute),
		LocationCaseSensitive: v.GetBool("OPPORTUNITY_LOCATION_CASE_SENSITIVE"),
	}

	cfg.Payments = PaymentsConfig{
		KeyID:       v.GetString("PAYMENT_KEY_ID"),
		KeySecret:   v.GetString("PAYMENT_KEY_SECRET"),
		Currency:    strings.ToUpper(v.GetString("PAYMENT_CURRENCY")),
		MerchantTag: v.GetString("PAYMENT_MERCHANT_NAME"),
	}

	cfg.Handoff = HandoffConfig{
		Workers:    v.GetInt("HANDOFF_WORKERS"),
		BufferSize: v.GetInt("HANDOFF_BUFFER_SIZE"),
		MaxRetries: v.GetInt("HANDOFF_RETRIES"),
		RetryDelay: parseDuration(v.GetString("HANDOFF_RETRY_DELAY"), time.Second),
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "ngo_connect")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("ENABLE_CACHE", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_ISSUER", "ngo-connect")
	v.SetDefault("JWT_EXPIRATION", "24h")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("OPPORTUNITY_SOURCE", OpportunitySourceSeed)
	v.SetDefault("OPPORTUNITY_SEED_FILE", "")
	v.SetDefault("OPPORTUNITY_CACHE_TTL", "5m")
	v.SetDefault("OPPORTUNITY_LOCATION_CASE_SENSITIVE", false)

	v.SetDefault("PAYMENT_KEY_ID", "rzp_test_dummy_key")
	v.SetDefault("PAYMENT_KEY_SECRET", "dev_payment_secret")
	v.SetDefault("PAYMENT_CURRENCY", "INR")
	v.SetDefault("PAYMENT_MERCHANT_NAME", "NGO Connect")

	v.SetDefault("HANDOFF_WORKERS", 2)
	v.SetDefault("HANDOFF_BUFFER_SIZE", 64)
	v.SetDefault("HANDOFF_RETRIES", 3)
	v.SetDefault("HANDOFF_RETRY_DELAY", "1s")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
