package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

var ErrUnknownOutput = errors.New("unknown output format")

type Config struct {
	// Config is the path of the YAML file the other fields are loaded from.
	Config string `yaml:"-"`

	Values []int  `yaml:"values"`
	Search int    `yaml:"search"`
	Output string `yaml:"output"`
}

// Default returns the configuration of the demonstration run.
func Default() Config {
	return Config{
		Values: []int{3, 2, 15, 5, 4, 45},
		Search: 15,
		Output: OutputText,
	}
}

func (cfg Config) ConfigFilePath() string {
	return cfg.Config
}

// LoadFile overrides cfg with the fields set in the YAML file at path.
func (cfg *Config) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading config file")
	}
	if err = yaml.Unmarshal(b, cfg); err != nil {
		return errors.Wrapf(err, "parsing config file %s", path)
	}
	cfg.Config = path
	return nil
}

func (cfg *Config) Validate() error {
	switch cfg.Output {
	case OutputText, OutputJSON:
		return nil
	case "":
		cfg.Output = OutputText
		return nil
	}
	return errors.Wrapf(ErrUnknownOutput, "%q", cfg.Output)
}
