package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Planner   PlannerConfig   `yaml:"planner"`
	MCP       MCPConfig       `yaml:"mcp"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Request ID schemes.
const (
	RequestIDsUUID   = "uuid"
	RequestIDsMillis = "millis"
)

type PlannerConfig struct {
	// RequestIDs selects how request_id is generated: "uuid" (UUIDv7) or "millis"
	// (Unix milliseconds).
	RequestIDs string `yaml:"request_ids"`
}

type MCPConfig struct {
	Enabled bool `yaml:"enabled"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server:    ServerConfig{Host: "127.0.0.1", Port: 8080},
		Log:       LogConfig{Level: "info"},
		Planner:   PlannerConfig{RequestIDs: RequestIDsUUID},
		MCP:       MCPConfig{Enabled: true},
		Tailscale: TailscaleConfig{Hostname: "timesplit", StateDir: "tsnet-state"},
	}
}

// SlogLevel maps the configured level name to a slog.Level.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads config from a YAML file over the defaults, then applies environment
// variable overrides. An empty path skips the file.
// Env vars use the prefix TIMESPLIT_ and underscore-separated paths:
//
//	TIMESPLIT_SERVER_HOST, TIMESPLIT_SERVER_PORT, TIMESPLIT_LOG_LEVEL,
//	TIMESPLIT_PLANNER_REQUEST_IDS, TIMESPLIT_MCP_ENABLED,
//	TIMESPLIT_TAILSCALE_ENABLED, TIMESPLIT_TAILSCALE_HOSTNAME,
//	TIMESPLIT_TAILSCALE_STATE_DIR
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TIMESPLIT_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("TIMESPLIT_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("TIMESPLIT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TIMESPLIT_PLANNER_REQUEST_IDS"); v != "" {
		cfg.Planner.RequestIDs = v
	}
	if v := os.Getenv("TIMESPLIT_MCP_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.MCP.Enabled = b
		}
	}
	if v := os.Getenv("TIMESPLIT_TAILSCALE_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Tailscale.Enabled = b
		}
	}
	if v := os.Getenv("TIMESPLIT_TAILSCALE_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("TIMESPLIT_TAILSCALE_STATE_DIR"); v != "" {
		cfg.Tailscale.StateDir = v
	}
}

func (c *Config) validate() error {
	if !c.Tailscale.Enabled && (c.Server.Port <= 0 || c.Server.Port > 65535) {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	switch c.Planner.RequestIDs {
	case RequestIDsUUID, RequestIDsMillis:
	default:
		return fmt.Errorf("planner.request_ids must be %q or %q, got %q", RequestIDsUUID, RequestIDsMillis, c.Planner.RequestIDs)
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	return nil
}
