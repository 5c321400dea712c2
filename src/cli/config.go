// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/H0llyW00dzZ/buffered-iterator/src/logger"
	"gopkg.in/yaml.v3"
)

// configEnv names the environment variable consulted when --config is unset.
const configEnv = "BUFITER_CONFIG_FILE"

const (
	defaultReadBufferSize = 8 << 10
	defaultIterations     = 5
	defaultSeed           = 1
	defaultDataDir        = "data"
)

var (
	parseModes   = []string{modeBuffered, modeAllocating}
	parseFormats = []string{formatText, formatHex, formatJSON, formatTable}
	logFormats   = []string{logger.FormatText, logger.FormatJSON}

	defaultSizes = []string{"1KiB", "32KiB", "1MiB", "4MiB", "16MiB"}
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	configFormatJSON configFormat = iota
	configFormatYAML
)

// Config holds defaults for every command. Command-line flags override it.
//
// The file is JSON or YAML, chosen by extension (.json, .yaml, .yml), and
// is located with --config or the BUFITER_CONFIG_FILE environment variable.
type Config struct {
	Log struct {
		// Format is "text" or "json".
		Format string `json:"format" yaml:"format"`
	} `json:"log" yaml:"log"`

	Parse struct {
		// Mode is "buffered" or "allocating".
		Mode string `json:"mode" yaml:"mode"`
		// Format is "text", "hex", "json" or "table".
		Format string `json:"format" yaml:"format"`
		// ReadBufferSize is the bufio size placed in front of the input.
		ReadBufferSize int `json:"readBufferSize" yaml:"readBufferSize"`
	} `json:"parse" yaml:"parse"`

	Generate struct {
		Dir   string   `json:"dir" yaml:"dir"`
		Sizes []string `json:"sizes" yaml:"sizes"`
		Seed  uint64   `json:"seed" yaml:"seed"`
	} `json:"generate" yaml:"generate"`

	Bench struct {
		Iterations     int `json:"iterations" yaml:"iterations"`
		ReadBufferSize int `json:"readBufferSize" yaml:"readBufferSize"`
	} `json:"bench" yaml:"bench"`
}

func defaultConfig() *Config {
	c := &Config{}
	c.Log.Format = logger.FormatText
	c.Parse.Mode = modeBuffered
	c.Parse.Format = formatText
	c.Parse.ReadBufferSize = defaultReadBufferSize
	c.Generate.Dir = defaultDataDir
	c.Generate.Sizes = slices.Clone(defaultSizes)
	c.Generate.Seed = defaultSeed
	c.Bench.Iterations = defaultIterations
	c.Bench.ReadBufferSize = defaultReadBufferSize
	return c
}

// validate resets invalid values to their defaults.
func (c *Config) validate() {
	d := defaultConfig()

	if !slices.Contains(logFormats, c.Log.Format) {
		c.Log.Format = d.Log.Format
	}
	if !slices.Contains(parseModes, c.Parse.Mode) {
		c.Parse.Mode = d.Parse.Mode
	}
	if !slices.Contains(parseFormats, c.Parse.Format) {
		c.Parse.Format = d.Parse.Format
	}
	if c.Parse.ReadBufferSize <= 0 {
		c.Parse.ReadBufferSize = d.Parse.ReadBufferSize
	}
	if c.Generate.Dir == "" {
		c.Generate.Dir = d.Generate.Dir
	}
	if len(c.Generate.Sizes) == 0 {
		c.Generate.Sizes = d.Generate.Sizes
	}
	if c.Bench.Iterations <= 0 {
		c.Bench.Iterations = d.Bench.Iterations
	}
	if c.Bench.ReadBufferSize <= 0 {
		c.Bench.ReadBufferSize = d.Bench.ReadBufferSize
	}
}

func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// loadConfig returns the defaults merged with the file at configPath, or at
// $BUFITER_CONFIG_FILE when configPath is empty. No file means defaults.
func loadConfig(configPath string) (*Config, error) {
	config := defaultConfig()

	if configPath == "" {
		configPath = os.Getenv(configEnv)
	}
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
		return nil, err
	}

	config.validate()
	return config, nil
}
