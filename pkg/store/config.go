package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Backend kinds understood by Open.
const (
	KindDiskv = "diskv"
	KindRedis = "redis"
	KindS3    = "s3"
)

// Config holds the resolved storage and session settings.
type Config struct {
	Backend     string `mapstructure:"backend"`
	Path        string `mapstructure:"path"`
	RedisURL    string `mapstructure:"redis_url"`
	S3Bucket    string `mapstructure:"s3_bucket"`
	S3Region    string `mapstructure:"s3_region"`
	S3Endpoint  string `mapstructure:"s3_endpoint"`
	S3AccessKey string `mapstructure:"s3_access_key"`
	S3SecretKey string `mapstructure:"s3_secret_key"`
	S3Prefix    string `mapstructure:"s3_prefix"`
	Session     string `mapstructure:"session"`
	Secret      string `mapstructure:"secret"`
	LogLevel    string `mapstructure:"log_level"`
}

// BasePath returns the diskv directory with '~' expanded.
func (c *Config) BasePath() string {
	p, err := homedir.Expand(c.Path)
	if err != nil {
		return c.Path
	}
	return p
}

// SessionPath returns the session token file with '~' expanded.
func (c *Config) SessionPath() string {
	p, err := homedir.Expand(c.Session)
	if err != nil {
		return c.Session
	}
	return p
}

// SecretPath is where a generated signing secret is kept when none is
// configured.
func (c *Config) SecretPath() string {
	return c.SessionPath() + ".key"
}

// LoadConfig reads .plannow.yaml from $PLANNOW_CONFIG_PATH or the working
// directory, overlaid with PLANNOW_* environment variables.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetDefault("backend", KindDiskv)
	v.SetDefault("path", "~/.plannow.db")
	v.SetDefault("session", "~/.plannow.session")
	v.SetDefault("log_level", "warn")
	v.SetDefault("s3_region", "us-east-1")
	v.SetDefault("s3_prefix", "plannow/")
	v.SetConfigName(".plannow") // .yaml is implicit
	v.SetEnvPrefix("PLANNOW")
	v.AutomaticEnv()

	// AutomaticEnv only covers keys viper already knows about.
	for _, k := range []string{"secret", "redis_url", "s3_bucket", "s3_endpoint", "s3_access_key", "s3_secret_key"} {
		_ = v.BindEnv(k)
	}

	if override := os.Getenv("PLANNOW_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("store: decode config: %w", err)
	}
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	return cfg, nil
}
