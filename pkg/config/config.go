package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Anthropic AnthropicConfig
	RateLimit RateLimitConfig
	Router    RouterConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// AnthropicConfig configures the outbound AI gateway. An empty APIKey puts
// the service into local-only mode.
type AnthropicConfig struct {
	APIKey        string
	Model         string
	MaxTokens     int
	Timeout       time.Duration
	BaseURL       string
	AllowFallback bool
}

type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
}

// RouterConfig holds the thresholds for the auto-routing decision.
type RouterConfig struct {
	ConfidenceThreshold float64
	MaxWords            int
	MaxChars            int
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// .env file is optional, environment variables alone work (Docker/K8s)

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	aiMaxTokens, _ := strconv.Atoi(getEnv("ANTHROPIC_MAX_TOKENS", "1000"))
	aiTimeout, _ := strconv.Atoi(getEnv("ANTHROPIC_TIMEOUT", "30"))
	allowFallback := getEnv("ANTHROPIC_ALLOW_FALLBACK", "true") == "true"
	rlMax, _ := strconv.Atoi(getEnv("RATE_LIMIT_MAX_REQUESTS", "20"))
	rlWindow, _ := strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_MS", "60000"))
	confThreshold, _ := strconv.ParseFloat(getEnv("ROUTER_CONFIDENCE_THRESHOLD", "0.4"), 64)
	maxWords, _ := strconv.Atoi(getEnv("ROUTER_MAX_WORDS", "10"))
	maxChars, _ := strconv.Atoi(getEnv("ROUTER_MAX_CHARS", "50"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "tritech_assistant"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Anthropic: AnthropicConfig{
			APIKey:        getEnv("ANTHROPIC_API_KEY", ""),
			Model:         getEnv("ANTHROPIC_MODEL", "claude-3-sonnet-20240229"),
			MaxTokens:     aiMaxTokens,
			Timeout:       time.Duration(aiTimeout) * time.Second,
			BaseURL:       getEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com/v1/messages"),
			AllowFallback: allowFallback,
		},
		RateLimit: RateLimitConfig{
			MaxRequests: rlMax,
			Window:      time.Duration(rlWindow) * time.Millisecond,
		},
		Router: RouterConfig{
			ConfidenceThreshold: confThreshold,
			MaxWords:            maxWords,
			MaxChars:            maxChars,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
