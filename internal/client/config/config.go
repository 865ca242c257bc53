package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/packmate/internal/logging"
)

// Config holds runtime settings for the packmate CLI.
//
// Fields:
//   - APIBaseURL: root URL of the travel-assistant HTTP API.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - RequestTimeout: upper bound for a single API call.
//   - DBPath: SQLite file holding the persisted session.
//   - LogLevel, LogFormat: see package logging.
type Config struct {
	APIBaseURL          string
	OnlineCheckInterval time.Duration
	RequestTimeout      time.Duration
	DBPath              string
	LogLevel            string
	LogFormat           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 15 * time.Second
	c.DBPath = "packmate.db"
	c.LogLevel = "info"
	c.LogFormat = logging.FormatText
}

// Load builds a Config from defaults, then the dotenv file and environment,
// then the JSON file and finally the command-line flags in args (without the
// program name). Later sources take precedence over earlier ones.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, args); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
