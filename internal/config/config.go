package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "GAZETTE_WATCH_CONFIG"
	smtpUserEnv   = "GAZETTE_SMTP_USER"
	statePathEnv  = "GAZETTE_STATE_FILE"
	logLevelEnv   = "GAZETTE_LOG_LEVEL"
)

// Config holds high-level settings required across the application.
type Config struct {
	Sites    []SiteConfig  `yaml:"sites"`
	Keywords []string      `yaml:"keywords"`
	State    StateConfig   `yaml:"state"`
	HTTP     HTTPConfig    `yaml:"http"`
	Email    EmailConfig   `yaml:"email"`
	Logging  LoggingConfig `yaml:"logging"`
}

// SiteConfig describes a single listing page with its scanner strategy.
type SiteConfig struct {
	Name    string            `yaml:"name"`
	Scanner string            `yaml:"scanner"`
	URL     string            `yaml:"url"`
	Options map[string]string `yaml:"options"`
}

// StateConfig locates the persisted seen-publications file.
type StateConfig struct {
	Path string `yaml:"path"`
}

// HTTPConfig tunes outbound requests.
type HTTPConfig struct {
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
	UserAgent      string `yaml:"userAgent"`
}

// Timeout resolves the configured request timeout, defaulting to 20s.
func (h HTTPConfig) Timeout() time.Duration {
	if h.TimeoutSeconds <= 0 {
		return 20 * time.Second
	}
	return time.Duration(h.TimeoutSeconds) * time.Second
}

// EmailConfig wires the SMTP alert channel. The password is never stored
// here; it is resolved at runtime via the credential store under
// KeyringService.
type EmailConfig struct {
	Enabled        bool     `yaml:"enabled"`
	Host           string   `yaml:"host"`
	Port           int      `yaml:"port"`
	User           string   `yaml:"user"`
	From           string   `yaml:"from"`
	To             []string `yaml:"to"`
	SubjectPrefix  string   `yaml:"subjectPrefix"`
	KeyringService string   `yaml:"keyringService"`
	SecretSource   string   `yaml:"secretSource"`
}

// LoggingConfig selects the log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	if len(cfg.Sites) == 0 {
		cfg.Sites = defaultConfig().Sites
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(smtpUserEnv); v != "" {
		c.Email.User = v
	}

	if v := os.Getenv(statePathEnv); v != "" {
		c.State.Path = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if len(override.Sites) > 0 {
		base.Sites = override.Sites
	}
	if len(override.Keywords) > 0 {
		base.Keywords = override.Keywords
	}

	if override.State.Path != "" {
		base.State.Path = override.State.Path
	}

	if override.HTTP.TimeoutSeconds > 0 {
		base.HTTP.TimeoutSeconds = override.HTTP.TimeoutSeconds
	}
	if override.HTTP.UserAgent != "" {
		base.HTTP.UserAgent = override.HTTP.UserAgent
	}

	if override.Email.Host != "" {
		base.Email.Enabled = override.Email.Enabled
		base.Email.Host = override.Email.Host
	}
	if override.Email.Port > 0 {
		base.Email.Port = override.Email.Port
	}
	if override.Email.User != "" {
		base.Email.User = override.Email.User
	}
	if override.Email.From != "" {
		base.Email.From = override.Email.From
	}
	if len(override.Email.To) > 0 {
		base.Email.To = override.Email.To
	}
	if override.Email.SubjectPrefix != "" {
		base.Email.SubjectPrefix = override.Email.SubjectPrefix
	}
	if override.Email.KeyringService != "" {
		base.Email.KeyringService = override.Email.KeyringService
	}
	if override.Email.SecretSource != "" {
		base.Email.SecretSource = override.Email.SecretSource
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Sites: []SiteConfig{
			{
				Name:    "vic-gazette",
				Scanner: "gazette",
				URL:     "https://www.gazette.vic.gov.au/gazette_bin/recent_gazettes.cfm",
			},
		},
		Keywords: []string{
			"acquisition",
			"declaration that a stratum",
			"designation of the project area",
			"designation of a project area",
			"notice of intention to acquire",
			"major transport projects facilitation act",
		},
		State: StateConfig{Path: "seen_publications.json"},
		HTTP: HTTPConfig{
			TimeoutSeconds: 20,
			UserAgent:      "GazetteWatch/1.0",
		},
		Email: EmailConfig{
			Enabled:        false,
			Port:           587,
			SubjectPrefix:  "Gazette Alert",
			KeyringService: "gazette-watch",
			SecretSource:   "keyring",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}
