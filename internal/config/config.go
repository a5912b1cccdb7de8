package config

import "time"

// Config holds runtime settings for the Sweet Shop client.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API (the /auth and
//     /sweets routes hang off it).
//   - RequestTimeout: per-request timeout for backend calls.
//   - DatabasePath: path of the local SQLite database holding the session
//     token.
//   - NotificationTTL: how long a notification stays visible.
type Config struct {
	ServerBaseURL   string
	RequestTimeout  time.Duration
	DatabasePath    string
	NotificationTTL time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000/api"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "sweetshop.db"
	c.NotificationTTL = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
