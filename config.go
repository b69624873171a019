// This file loads the optional YAML run configuration.

package main

import (
	"os"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config captures all tunable runtime options.  Command-line flags take
// precedence over whatever is loaded here.
type Config struct {
	Reducer   ReducerConfig `yaml:"reducer"`
	Verbose   bool          `yaml:"verbose"`
	Colored   bool          `yaml:"colored"`
	MaxInputs int           `yaml:"max_inputs"`
}

// ReducerConfig locates and bounds the external reducer process.
type ReducerConfig struct {
	Path           string `yaml:"path"`
	Dir            string `yaml:"dir"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

const (
	// maxInputsDefault bounds the table width unless configured otherwise.
	// Expansion is exponential in the input count, so this doubles as the
	// resource governor for fully wildcarded rows.
	maxInputsDefault = 16

	// maxInputsLimit is the hard ceiling: a full-domain expansion must fit
	// an in-memory slice and its indices a uint.
	maxInputsLimit = 30

	timeoutSecondsDefault = 30
)

// LoadConfig reads configuration from a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	normalizeConfig(&cfg)
	return cfg, nil
}

func defaultConfig() Config {
	return Config{
		Reducer: ReducerConfig{
			Path:           defaultReducerPath(),
			TimeoutSeconds: timeoutSecondsDefault,
		},
		MaxInputs: maxInputsDefault,
	}
}

func normalizeConfig(cfg *Config) {
	if cfg.Reducer.Path == "" {
		cfg.Reducer.Path = defaultReducerPath()
	}
	if cfg.Reducer.TimeoutSeconds <= 0 {
		cfg.Reducer.TimeoutSeconds = timeoutSecondsDefault
	}
	if cfg.MaxInputs <= 0 {
		cfg.MaxInputs = maxInputsDefault
	}
	if cfg.MaxInputs > maxInputsLimit {
		cfg.MaxInputs = maxInputsLimit
	}
}

// defaultReducerPath names the reducer executable built next to this
// program.
func defaultReducerPath() string {
	if runtime.GOOS == "windows" {
		return "petrick.exe"
	}
	return "./petrick"
}

// effectiveConfig resolves the run configuration: file values when -config
// is given, built-in defaults otherwise, with command-line flags applied on
// top.
func effectiveConfig(p *Parameters) (Config, error) {
	cfg := defaultConfig()
	if p.ConfigFile != "" {
		var err error
		cfg, err = LoadConfig(p.ConfigFile)
		if err != nil {
			return Config{}, err
		}
	}
	if p.Reducer != "" {
		cfg.Reducer.Path = p.Reducer
	}
	if p.Verbose {
		cfg.Verbose = true
	}
	if p.Colored {
		cfg.Colored = true
	}
	return cfg, nil
}
