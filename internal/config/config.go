package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Rules   RulesConfig
	Data    DataConfig
	Server  ServerConfig
	Scraper ScraperConfig
}

type AppConfig struct {
	Environment string
	LogLevel    string
}

type RulesConfig struct {
	AccountRulesPath string
	TextRulesPath    string
	YAMLPath         string
}

type DataConfig struct {
	ExportPath string
	OutputDir  string
}

type ServerConfig struct {
	Port               string
	Host               string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	RateLimitPerSecond int
	RateLimitBurst     int
	CORSAllowOrigins   []string
}

type ScraperConfig struct {
	LoginURL string
	User     string
	Password string
	Headless bool
	Timeout  time.Duration
	MaxPages int
}

const DefaultLoginURL = "https://ebanking.easybank.at/InternetBanking/InternetBanking?d=login&svc=EASYBANK&ui=html&lang=de"

// Load reads the configuration from the environment. A .env file is loaded
// first when present; an explicitly named file must exist.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	config := &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Rules: RulesConfig{
			AccountRulesPath: getEnv("CASHFLOW_ACCOUNT_RULES", "data/ibans.csv"),
			TextRulesPath:    getEnv("CASHFLOW_TEXT_RULES", "data/text.csv"),
			YAMLPath:         getEnv("CASHFLOW_RULES_YAML", ""),
		},
		Data: DataConfig{
			ExportPath: getEnv("CASHFLOW_EXPORT_PATH", "transactions.csv"),
			OutputDir:  getEnv("CASHFLOW_OUTPUT_DIR", "."),
		},
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "8080"),
			Host:               getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:        getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:       getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
			CORSAllowOrigins:   getListEnv("CORS_ALLOW_ORIGINS", []string{"*"}),
		},
		Scraper: ScraperConfig{
			LoginURL: getEnv("SCRAPER_LOGIN_URL", DefaultLoginURL),
			User:     getEnv("SCRAPER_USER", ""),
			Password: getEnv("SCRAPER_PASSWORD", ""),
			Headless: getBoolEnv("SCRAPER_HEADLESS", false),
			Timeout:  getDurationEnv("SCRAPER_TIMEOUT", 2*time.Minute),
			MaxPages: getIntEnv("SCRAPER_MAX_PAGES", 100),
		},
	}

	return config, nil
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var problems []error

	if c.Data.ExportPath == "" {
		problems = append(problems, errors.New("CASHFLOW_EXPORT_PATH must not be empty"))
	}
	if port, err := strconv.Atoi(c.Server.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Errorf("SERVER_PORT %q is not a valid port", c.Server.Port))
	}
	if c.Server.RateLimitPerSecond <= 0 {
		problems = append(problems, errors.New("RATE_LIMIT_PER_SECOND must be positive"))
	}
	if c.Server.RateLimitBurst < c.Server.RateLimitPerSecond {
		problems = append(problems, errors.New("RATE_LIMIT_BURST must be at least RATE_LIMIT_PER_SECOND"))
	}
	if c.Scraper.MaxPages <= 0 {
		problems = append(problems, errors.New("SCRAPER_MAX_PAGES must be positive"))
	}
	if c.Scraper.Timeout <= 0 {
		problems = append(problems, errors.New("SCRAPER_TIMEOUT must be positive"))
	}

	return errors.Join(problems...)
}

func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getListEnv splits a comma separated value and trims each entry
func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	items := strings.Split(value, ",")
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
	}
	return items
}
