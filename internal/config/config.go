package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API     *APIConfig     `mapstructure:"api"`
	Gin     *GinConfig     `mapstructure:"gin"`
	Backend *BackendConfig `mapstructure:"backend"`
	Session *SessionConfig `mapstructure:"session"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

// BackendConfig points at the REST API that owns all entity state.
type BackendConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type SessionConfig struct {
	CookieName  string `mapstructure:"cookie_name"`
	SigningKey  string `mapstructure:"signing_key"`
	MaxAgeHours int    `mapstructure:"max_age_hours"`
	Secure      bool   `mapstructure:"secure"`
}

// Load reads the yaml config at path, with environment variables taking
// precedence (e.g. BACKEND_BASE_URL overrides backend.base_url).
func Load(path string) (*AppConfig, error) {
	viper.SetConfigFile(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	var conf AppConfig
	if err := viper.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	// The loaded config is shared with running handlers, so changes on
	// disk are only reported; a restart picks them up.
	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed; restart to apply", zap.String("file", e.Name))
	})
	viper.WatchConfig()

	if conf.Backend == nil {
		conf.Backend = &BackendConfig{}
	}
	if conf.Backend.BaseURL == "" {
		conf.Backend.BaseURL = "http://localhost:3000"
	}

	return &conf, nil
}
