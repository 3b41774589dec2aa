package app

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for a service instance. SessionSecret
// and RedisAddr must be identical across every deployed service; token
// verification and session revocation break down otherwise.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	MongoURI string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDB  string `envconfig:"MONGO_DB" default:"goblinball"`

	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	SessionSecret string        `envconfig:"SESSION_SECRET" required:"true"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"168h"`

	UsersURL   string `envconfig:"USERS_URL" default:"http://127.0.0.1:8081"`
	LeaguesURL string `envconfig:"LEAGUES_URL" default:"http://127.0.0.1:8082"`
	TeamsURL   string `envconfig:"TEAMS_URL" default:"http://127.0.0.1:8083"`
	PlayersURL string `envconfig:"PLAYERS_URL" default:"http://127.0.0.1:8084"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("session secret must be provided")
	}
	return &cfg, nil
}

// PeerURLs maps owning-service tags to their base URLs for entity
// resolution.
func (c *Config) PeerURLs() map[string]string {
	return map[string]string{
		"users":   c.UsersURL,
		"leagues": c.LeaguesURL,
		"teams":   c.TeamsURL,
		"players": c.PlayersURL,
	}
}

// IsProduction returns true when the service runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
