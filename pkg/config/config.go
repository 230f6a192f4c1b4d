package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/cairn/config"
	ConfigFileName    = "cairn.yml"
)

// Config holds all server configuration settings
type Config struct {
	// BindAddress is the address the HTTP server listens on
	BindAddress string `yaml:"bind_address" json:"bind_address"`

	// Port is the HTTP server port
	Port string `yaml:"port" json:"port"`

	// DatabaseURL is the Postgres connection string
	DatabaseURL string `yaml:"database_url" json:"database_url"`

	// SessionTTLHours is the session lifetime in hours; 0 disables expiry
	SessionTTLHours int `yaml:"session_ttl_hours" json:"session_ttl_hours"`

	// AllowedOrigins is the list of origins allowed for CORS requests
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins"`

	// GoogleAudience is the OAuth client ID Google ID tokens must carry;
	// empty disables google sign-in
	GoogleAudience string `yaml:"google_audience" json:"google_audience"`

	// PublicBaseURL is the address activation links are built against
	PublicBaseURL string `yaml:"public_base_url" json:"public_base_url"`

	// SMTPAddr is the host:port of the mail relay; empty logs mail instead
	SMTPAddr string `yaml:"smtp_addr" json:"smtp_addr"`

	// SMTPFrom is the sender address for outgoing mail
	SMTPFrom string `yaml:"smtp_from" json:"smtp_from"`

	// SMTPUsername authenticates against the relay; may be empty
	SMTPUsername string `yaml:"smtp_username" json:"smtp_username"`

	// SMTPPassword authenticates against the relay
	SMTPPassword string `yaml:"smtp_password" json:"smtp_password"`

	// ContactWindowSeconds is the contact-form rate limit window
	ContactWindowSeconds int `yaml:"contact_window_seconds" json:"contact_window_seconds"`

	// ContactMaxPerWindow is the number of contact mails allowed per
	// client within the window
	ContactMaxPerWindow int `yaml:"contact_max_per_window" json:"contact_max_per_window"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		BindAddress:          "0.0.0.0",
		Port:                 "8080",
		SessionTTLHours:      720,
		AllowedOrigins:       []string{},
		PublicBaseURL:        "http://localhost:8080",
		ContactWindowSeconds: 3600,
		ContactMaxPerWindow:  5,
		sources:              make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("CAIRN_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"bind_address", "port", "database_url", "session_ttl_hours",
		"allowed_origins", "google_audience", "public_base_url",
		"smtp_addr", "smtp_from", "smtp_username", "smtp_password",
		"contact_window_seconds", "contact_max_per_window",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
		c.sources["bind_address"] = "file"
	}
	if file.Port != "" {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.DatabaseURL != "" {
		c.DatabaseURL = file.DatabaseURL
		c.sources["database_url"] = "file"
	}
	if file.SessionTTLHours != 0 {
		c.SessionTTLHours = file.SessionTTLHours
		c.sources["session_ttl_hours"] = "file"
	}
	if len(file.AllowedOrigins) > 0 {
		c.AllowedOrigins = file.AllowedOrigins
		c.sources["allowed_origins"] = "file"
	}
	if file.GoogleAudience != "" {
		c.GoogleAudience = file.GoogleAudience
		c.sources["google_audience"] = "file"
	}
	if file.PublicBaseURL != "" {
		c.PublicBaseURL = file.PublicBaseURL
		c.sources["public_base_url"] = "file"
	}
	if file.SMTPAddr != "" {
		c.SMTPAddr = file.SMTPAddr
		c.sources["smtp_addr"] = "file"
	}
	if file.SMTPFrom != "" {
		c.SMTPFrom = file.SMTPFrom
		c.sources["smtp_from"] = "file"
	}
	if file.SMTPUsername != "" {
		c.SMTPUsername = file.SMTPUsername
		c.sources["smtp_username"] = "file"
	}
	if file.SMTPPassword != "" {
		c.SMTPPassword = file.SMTPPassword
		c.sources["smtp_password"] = "file"
	}
	if file.ContactWindowSeconds != 0 {
		c.ContactWindowSeconds = file.ContactWindowSeconds
		c.sources["contact_window_seconds"] = "file"
	}
	if file.ContactMaxPerWindow != 0 {
		c.ContactMaxPerWindow = file.ContactMaxPerWindow
		c.sources["contact_max_per_window"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("CAIRN_BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("CAIRN_PORT"); val != "" {
		c.Port = val
		c.sources["port"] = "environment"
	}
	if val := os.Getenv("DATABASE_URL"); val != "" {
		c.DatabaseURL = val
		c.sources["database_url"] = "environment"
	}
	if val := os.Getenv("CAIRN_SESSION_TTL_HOURS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.SessionTTLHours = i
			c.sources["session_ttl_hours"] = "environment"
		}
	}
	if val := os.Getenv("CAIRN_ALLOWED_ORIGINS"); val != "" {
		c.AllowedOrigins = splitAndTrim(val)
		c.sources["allowed_origins"] = "environment"
	}
	if val := os.Getenv("CAIRN_GOOGLE_AUDIENCE"); val != "" {
		c.GoogleAudience = val
		c.sources["google_audience"] = "environment"
	}
	if val := os.Getenv("CAIRN_PUBLIC_BASE_URL"); val != "" {
		c.PublicBaseURL = val
		c.sources["public_base_url"] = "environment"
	}
	if val := os.Getenv("CAIRN_SMTP_ADDR"); val != "" {
		c.SMTPAddr = val
		c.sources["smtp_addr"] = "environment"
	}
	if val := os.Getenv("CAIRN_SMTP_FROM"); val != "" {
		c.SMTPFrom = val
		c.sources["smtp_from"] = "environment"
	}
	if val := os.Getenv("CAIRN_SMTP_USERNAME"); val != "" {
		c.SMTPUsername = val
		c.sources["smtp_username"] = "environment"
	}
	if val := os.Getenv("CAIRN_SMTP_PASSWORD"); val != "" {
		c.SMTPPassword = val
		c.sources["smtp_password"] = "environment"
	}
	if val := os.Getenv("CAIRN_CONTACT_WINDOW_SECONDS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.ContactWindowSeconds = i
			c.sources["contact_window_seconds"] = "environment"
		}
	}
	if val := os.Getenv("CAIRN_CONTACT_MAX_PER_WINDOW"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.ContactMaxPerWindow = i
			c.sources["contact_max_per_window"] = "environment"
		}
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// SessionTTL returns the session lifetime as a duration
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// ContactWindow returns the contact-form rate window as a duration
func (c *Config) ContactWindow() time.Duration {
	return time.Duration(c.ContactWindowSeconds) * time.Second
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if c.SessionTTLHours < 0 {
		return fmt.Errorf("session_ttl_hours must not be negative")
	}
	if c.PublicBaseURL != "" {
		if _, err := url.Parse(c.PublicBaseURL); err != nil {
			return fmt.Errorf("invalid public_base_url: %w", err)
		}
	}
	if c.ContactMaxPerWindow < 0 || c.ContactWindowSeconds < 0 {
		return fmt.Errorf("contact rate limit values must not be negative")
	}
	return nil
}

// Attributes returns all configuration attributes with their values and
// sources. Secrets are redacted.
func (c *Config) Attributes() []Attribute {
	redacted := func(v string) string {
		if v == "" {
			return ""
		}
		return "(redacted)"
	}
	return []Attribute{
		{Name: "bind_address", Value: c.BindAddress, Source: c.Source("bind_address")},
		{Name: "port", Value: c.Port, Source: c.Source("port")},
		{Name: "database_url", Value: redacted(c.DatabaseURL), Source: c.Source("database_url")},
		{Name: "session_ttl_hours", Value: strconv.Itoa(c.SessionTTLHours), Source: c.Source("session_ttl_hours")},
		{Name: "allowed_origins", Value: strings.Join(c.AllowedOrigins, ","), Source: c.Source("allowed_origins")},
		{Name: "google_audience", Value: c.GoogleAudience, Source: c.Source("google_audience")},
		{Name: "public_base_url", Value: c.PublicBaseURL, Source: c.Source("public_base_url")},
		{Name: "smtp_addr", Value: c.SMTPAddr, Source: c.Source("smtp_addr")},
		{Name: "smtp_from", Value: c.SMTPFrom, Source: c.Source("smtp_from")},
		{Name: "smtp_username", Value: c.SMTPUsername, Source: c.Source("smtp_username")},
		{Name: "smtp_password", Value: redacted(c.SMTPPassword), Source: c.Source("smtp_password")},
		{Name: "contact_window_seconds", Value: strconv.Itoa(c.ContactWindowSeconds), Source: c.Source("contact_window_seconds")},
		{Name: "contact_max_per_window", Value: strconv.Itoa(c.ContactMaxPerWindow), Source: c.Source("contact_max_per_window")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-30s %-40s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-30s %-40s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-30s %-40s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
