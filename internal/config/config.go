package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	LogDir      string `env:"LOG_DIR" envDefault:"logs"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"lithos-protocol"`
	Version     string `env:"VERSION" envDefault:"dev"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`

	// HTTP surface
	APIKey             string        `env:"API_KEY"`
	JWTSecret          string        `env:"JWT_SECRET"`
	JWTTTL             time.Duration `env:"JWT_TTL" envDefault:"1h"`
	TrustedProxies     []string      `env:"TRUSTED_PROXIES" envSeparator:","`
	RateLimitPerMinute int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"600"`

	// Storage: "memory" or "postgres"
	StorageBackend    string        `env:"STORAGE_BACKEND" envDefault:"memory"`
	DBUser            string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432"`
	DBName            string        `env:"DB_NAME" envDefault:"lithos"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"20"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`

	// Economy accounts, as hex addresses
	AdminAddress    string `env:"ADMIN_ADDRESS"`
	SystemAddress   string `env:"SYSTEM_ADDRESS"`
	UtilityToken    string `env:"UTILITY_TOKEN_ADDRESS"`
	GovernanceToken string `env:"GOVERNANCE_TOKEN_ADDRESS"`
	StakingCustody  string `env:"STAKING_CUSTODY_ADDRESS"`

	// EconomyConfigPath is the seed file applied at first boot
	EconomyConfigPath string `env:"ECONOMY_CONFIG" envDefault:"configs/economy.yaml"`

	// Event delivery
	EventMaxRetries     int           `env:"EVENT_MAX_RETRIES" envDefault:"5"`
	EventRetryDelay     time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"2s"`
	EventDeadLetterPath string        `env:"EVENT_DEAD_LETTER_PATH" envDefault:"logs/event_deadletter.jsonl"`

	// Discord announcements, disabled unless both are set
	DiscordBotToken  string `env:"DISCORD_BOT_TOKEN"`
	DiscordChannelID string `env:"DISCORD_CHANNEL_ID"`

	// Tracing, opt-in
	OtelEnabled  bool   `env:"OTEL_ENABLED" envDefault:"false"`
	OtelEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load reads .env if present, parses the environment and validates the result
func Load() (*Config, error) {
	// A missing .env is fine; real environment variables take precedence anyway
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseEnv, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// UsesPostgres reports whether the postgres backend is selected
func (c *Config) UsesPostgres() bool {
	return c.StorageBackend == BackendPostgres
}

// DiscordEnabled reports whether Discord announcements are configured
func (c *Config) DiscordEnabled() bool {
	return c.DiscordBotToken != "" && c.DiscordChannelID != ""
}

// Validate checks required values and their formats, reporting every problem
func (c *Config) Validate() error {
	var errs []error

	if c.APIKey == "" {
		errs = append(errs, errors.New(ErrMsgAPIKeyRequired))
	}
	if len(c.JWTSecret) < MinJWTSecretLength {
		errs = append(errs, fmt.Errorf(ErrMsgJWTSecretTooShort, MinJWTSecretLength))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf(ErrMsgInvalidPort, c.Port))
	}
	if c.StorageBackend != BackendMemory && c.StorageBackend != BackendPostgres {
		errs = append(errs, fmt.Errorf(ErrMsgInvalidBackend, c.StorageBackend))
	}
	if c.RateLimitPerMinute <= 0 {
		errs = append(errs, fmt.Errorf(ErrMsgInvalidRateLimit, c.RateLimitPerMinute))
	}

	for _, addr := range []struct {
		name  string
		value string
	}{
		{"ADMIN_ADDRESS", c.AdminAddress},
		{"SYSTEM_ADDRESS", c.SystemAddress},
		{"UTILITY_TOKEN_ADDRESS", c.UtilityToken},
		{"GOVERNANCE_TOKEN_ADDRESS", c.GovernanceToken},
		{"STAKING_CUSTODY_ADDRESS", c.StakingCustody},
	} {
		if err := validateAddress(addr.name, addr.value); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
