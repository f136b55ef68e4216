package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Lead marker backends.
const (
	MarkerBackendMemory   = "memory"
	MarkerBackendRedis    = "redis"
	MarkerBackendDynamoDB = "dynamodb"
)

// Config holds the environment driven configuration of the quote service.
// It is parsed and validated once at startup and injected into constructors.
type Config struct {
	Port               string   `env:"PORT" envDefault:"8000"`
	LogLevel           string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat          string   `env:"LOG_FORMAT" envDefault:"json"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	Completion CompletionConfig
	Sheets     SheetsConfig
	Leads      LeadConfig
	AWS        AWSConfig
	Pricing    PricingConfig
}

// CompletionConfig configures the chat completion providers.
type CompletionConfig struct {
	OpenAIAPIKey  string  `env:"OPENAI_API_KEY"`
	OpenAIModel   string  `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	OpenAIBaseURL string  `env:"OPENAI_BASE_URL"`
	GeminiAPIKey  string  `env:"GEMINI_API_KEY"`
	GeminiModel   string  `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	MaxTokens     int     `env:"CHAT_MAX_TOKENS" envDefault:"300"`
	Temperature   float32 `env:"CHAT_TEMPERATURE" envDefault:"0.7"`
}

// SheetsConfig points at the spreadsheet receiving lead rows.
type SheetsConfig struct {
	CredentialsJSON string `env:"GOOGLE_SHEETS_CREDENTIALS"`
	SpreadsheetID   string `env:"SPREADSHEET_ID"`
	Range           string `env:"SPREADSHEET_RANGE" envDefault:"A1"`
}

// Configured reports whether both credentials and target sheet are present.
func (s SheetsConfig) Configured() bool {
	return strings.TrimSpace(s.CredentialsJSON) != "" && strings.TrimSpace(s.SpreadsheetID) != ""
}

// LeadConfig controls lead recording.
type LeadConfig struct {
	Timezone      string        `env:"LEAD_TIMEZONE" envDefault:"America/Sao_Paulo"`
	MarkerBackend string        `env:"LEAD_MARKER_BACKEND" envDefault:"memory"`
	MarkerTTL     time.Duration `env:"LEAD_MARKER_TTL" envDefault:"720h"`
	MarkersTable  string        `env:"LEAD_MARKERS_TABLE" envDefault:"lead_markers"`
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`

	location *time.Location
}

// Location returns the timezone lead timestamps are rendered in.
func (l LeadConfig) Location() *time.Location {
	if l.location == nil {
		return time.UTC
	}
	return l.location
}

// AWSConfig is used by the DynamoDB lead marker backend.
type AWSConfig struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
}

// PricingConfig configures the external pricing API.
type PricingConfig struct {
	BaseURL string        `env:"TRINDADE_API_URL" envDefault:"https://api.trindadetecnologia.com.br"`
	APIKey  string        `env:"TRINDADE_API_KEY"`
	Timeout time.Duration `env:"TRINDADE_TIMEOUT" envDefault:"30s"`
}

// Load parses environment variables into Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and resolves derived settings.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: expected json or console", c.LogFormat)
	}

	if c.Completion.MaxTokens <= 0 {
		return fmt.Errorf("CHAT_MAX_TOKENS must be positive")
	}
	if c.Completion.Temperature < 0 || c.Completion.Temperature > 2 {
		return fmt.Errorf("CHAT_TEMPERATURE must be between 0 and 2")
	}

	if strings.TrimSpace(c.Sheets.CredentialsJSON) != "" && !json.Valid([]byte(c.Sheets.CredentialsJSON)) {
		return fmt.Errorf("GOOGLE_SHEETS_CREDENTIALS is not valid JSON")
	}

	switch c.Leads.MarkerBackend {
	case MarkerBackendMemory, MarkerBackendDynamoDB:
	case MarkerBackendRedis:
		if strings.TrimSpace(c.Leads.RedisAddr) == "" {
			return fmt.Errorf("REDIS_ADDR is required when LEAD_MARKER_BACKEND is redis")
		}
	default:
		return fmt.Errorf("invalid LEAD_MARKER_BACKEND %q", c.Leads.MarkerBackend)
	}
	if c.Leads.MarkerTTL <= 0 {
		return fmt.Errorf("LEAD_MARKER_TTL must be positive")
	}
	loc, err := time.LoadLocation(c.Leads.Timezone)
	if err != nil {
		return fmt.Errorf("invalid LEAD_TIMEZONE %q: %w", c.Leads.Timezone, err)
	}
	c.Leads.location = loc

	if c.Pricing.Timeout <= 0 {
		return fmt.Errorf("TRINDADE_TIMEOUT must be positive")
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}
