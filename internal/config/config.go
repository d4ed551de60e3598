package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Terminal Terminal `yaml:"terminal"`
}

type Terminal struct {
	Prompt     string `yaml:"prompt" env:"TERMINAL_PROMPT" env-default:"> "`
	EmptyGlyph string `yaml:"empty-glyph" env:"TERMINAL_EMPTY_GLYPH" env-default:"."`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
