package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the optional errgen.yaml file in the working directory. Flags
// given on the command line win over the file.
//
//	output: errors_gen.go
//	tags: [integration]
//	tests: true
//	color: never
type Config struct {
	Output  string   `yaml:"output"`
	Tags    []string `yaml:"tags"`
	Tests   *bool    `yaml:"tests"`
	Color   string   `yaml:"color"`
	Verbose bool     `yaml:"verbose"`
}

// loadConfig reads the config file at path. A missing file is an empty
// config unless it is required.
func loadConfig(path string, required bool) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !required {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// apply fills flags not changed on the command line from the config.
func (cfg Config) apply(f *flags, changed func(name string) bool) {
	if cfg.Output != "" && !changed("output") {
		f.output = cfg.Output
	}
	if len(cfg.Tags) != 0 && !changed("tags") {
		f.tags = strings.Join(cfg.Tags, ",")
	}
	if cfg.Tests != nil && !changed("tests") {
		f.tests = *cfg.Tests
	}
	if cfg.Color != "" && !changed("color") {
		f.color = cfg.Color
	}
	if cfg.Verbose && !changed("verbose") {
		f.verbose = true
	}
}
