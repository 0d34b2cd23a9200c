package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "config/config.yaml"

type Config struct {
	App         AppConfig         `yaml:"app"`
	Server      ServerConfig      `yaml:"server"`
	Weather     WeatherConfig     `yaml:"weather"`
	Geolocation GeolocationConfig `yaml:"geolocation"`
	Dashboard   DashboardConfig   `yaml:"dashboard"`
	Log         LogConfig         `yaml:"log"`
	Sentry      SentryConfig      `yaml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"NAME"`
	Version string `yaml:"version" envconfig:"VERSION"`
	Env     string `yaml:"env" envconfig:"ENV"`
}

// ServerConfig timeouts are in seconds. A zero WriteTimeout keeps event
// streams open indefinitely.
type ServerConfig struct {
	Port         string `yaml:"port" envconfig:"PORT"`
	ReadTimeout  int    `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout int    `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout  int    `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
}

// WeatherConfig selects the backend. Empty URLs fall back to the provider's public endpoint.
type WeatherConfig struct {
	Provider       string  `yaml:"provider" envconfig:"PROVIDER"`
	BaseURL        string  `yaml:"base_url" envconfig:"BASE_URL"`
	GeocodingURL   string  `yaml:"geocoding_url" envconfig:"GEOCODING_URL"`
	APIKey         string  `yaml:"api_key,omitempty" envconfig:"API_KEY"`
	Timeout        int     `yaml:"timeout" envconfig:"TIMEOUT"`
	RateLimitRPS   float64 `yaml:"rate_limit_rps" envconfig:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `yaml:"rate_limit_burst" envconfig:"RATE_LIMIT_BURST"`
}

type GeolocationConfig struct {
	Enabled bool   `yaml:"enabled" envconfig:"ENABLED"`
	BaseURL string `yaml:"base_url" envconfig:"BASE_URL"`
	Timeout int    `yaml:"timeout" envconfig:"TIMEOUT"`
}

type DashboardConfig struct {
	IconBaseURL    string `yaml:"icon_base_url" envconfig:"ICON_BASE_URL"`
	LoadingDelayMS int    `yaml:"loading_delay_ms" envconfig:"LOADING_DELAY_MS"`
	ClockPeriodMS  int    `yaml:"clock_period_ms" envconfig:"CLOCK_PERIOD_MS"`
	Clock12h       bool   `yaml:"clock_12h" envconfig:"CLOCK_12H"`
	Timezone       string `yaml:"timezone" envconfig:"TIMEZONE"`
	DefaultUnit    string `yaml:"default_unit" envconfig:"DEFAULT_UNIT"`
}

type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn" envconfig:"DSN"`
	Debug bool   `yaml:"debug" envconfig:"DEBUG"`
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider layers defaults, a YAML file and the environment, in that order.
type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := Defaults()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	// Fields without a matching variable keep their current value.
	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(cnf *Config) error {
	var problems []string

	if strings.TrimSpace(cnf.App.Name) == "" {
		problems = append(problems, "app.name is required")
	}
	if strings.TrimSpace(cnf.Server.Port) == "" {
		problems = append(problems, "server.port is required")
	}
	if cnf.Server.ReadTimeout <= 0 || cnf.Server.IdleTimeout <= 0 {
		problems = append(problems, "server read and idle timeouts must be positive")
	}
	if cnf.Server.WriteTimeout < 0 {
		problems = append(problems, "server.write_timeout must not be negative")
	}
	switch cnf.Weather.Provider {
	case "openweathermap", "open-meteo":
	default:
		problems = append(problems, "weather.provider must be openweathermap or open-meteo")
	}
	if cnf.Weather.RateLimitRPS < 0 {
		problems = append(problems, "weather.rate_limit_rps must not be negative")
	}
	if cnf.Geolocation.Enabled && strings.TrimSpace(cnf.Geolocation.BaseURL) == "" {
		problems = append(problems, "geolocation.base_url is required when geolocation is enabled")
	}
	if cnf.Dashboard.LoadingDelayMS < 0 {
		problems = append(problems, "dashboard.loading_delay_ms must not be negative")
	}
	if cnf.Dashboard.ClockPeriodMS <= 0 {
		problems = append(problems, "dashboard.clock_period_ms must be positive")
	}
	switch strings.ToUpper(cnf.Dashboard.DefaultUnit) {
	case "C", "F":
	default:
		problems = append(problems, "dashboard.default_unit must be C or F")
	}
	if _, err := time.LoadLocation(cnf.Dashboard.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("dashboard.timezone is invalid: %v", err))
	}
	switch cnf.Log.Format {
	case "json", "console":
	default:
		problems = append(problems, "log.format must be json or console")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return nil
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-dashboard",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:        "8080",
			ReadTimeout: 10,
			IdleTimeout: 120,
		},
		Weather: WeatherConfig{
			Provider:       "openweathermap",
			Timeout:        30,
			RateLimitRPS:   1,
			RateLimitBurst: 5,
		},
		Geolocation: GeolocationConfig{
			Enabled: true,
			BaseURL: "http://ip-api.com/json",
			Timeout: 10,
		},
		Dashboard: DashboardConfig{
			IconBaseURL:    "https://openweathermap.org/img/wn",
			LoadingDelayMS: 200,
			ClockPeriodMS:  1000,
			Timezone:       "Local",
			DefaultUnit:    "C",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func NewConfig() (*Config, error) {
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = defaultConfigFile
	}

	return NewConfigWithProvider(NewFileConfigProvider(path))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, err
	}

	return cnf, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c *Config) LoadingDelay() time.Duration {
	return time.Duration(c.Dashboard.LoadingDelayMS) * time.Millisecond
}

func (c *Config) ClockPeriod() time.Duration {
	return time.Duration(c.Dashboard.ClockPeriodMS) * time.Millisecond
}

func (c *Config) WeatherTimeout() time.Duration {
	return time.Duration(c.Weather.Timeout) * time.Second
}

func (c *Config) GeolocationTimeout() time.Duration {
	return time.Duration(c.Geolocation.Timeout) * time.Second
}
