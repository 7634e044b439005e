package config

import (
	"bitbucket.org/sotavant/eagle-energy-skill/internal/eagle"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"time"
)

type Config struct {
	AppID    string `yaml:"app_id" env:"APP_ID" env-required:"true" env-description:"skill application id requests must carry"`
	TimeZone string `yaml:"time_zone" env:"TIME_ZONE" env-default:"UTC" env-description:"IANA time zone for local time in logs"`

	Eagle struct {
		URL      string        `yaml:"url" env:"EAGLE_URL" env-default:"https://rainforestcloud.com:9445" env-description:"Rainforest cloud base URL"`
		Username string        `yaml:"username" env:"EAGLE_USERNAME" env-required:"true" env-description:"Rainforest cloud user"`
		Password string        `yaml:"password" env:"EAGLE_PASSWORD" env-required:"true" env-description:"Rainforest cloud password"`
		CloudID  string        `yaml:"cloud_id" env:"EAGLE_CLOUD_ID" env-required:"true" env-description:"EAGLE cloud id"`
		MacID    string        `yaml:"mac_id" env:"EAGLE_MAC_ID" env-description:"gateway MAC id, discovered when empty"`
		Timeout  time.Duration `yaml:"timeout" env:"EAGLE_TIMEOUT" env-default:"10s" env-description:"timeout of a single cloud request"`
	} `yaml:"eagle"`
}

// Load reads the config file at path, if any, and then the environment,
// which takes precedence.
func Load(path string) (*Config, error) {
	var cfg Config

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c *Config) EagleConfig() eagle.Config {
	return eagle.Config{
		URL:      c.Eagle.URL,
		Username: c.Eagle.Username,
		Password: c.Eagle.Password,
		CloudID:  c.Eagle.CloudID,
		MacID:    c.Eagle.MacID,
		Timeout:  c.Eagle.Timeout,
	}
}
