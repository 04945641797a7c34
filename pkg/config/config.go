// Package config loads sbgn2sif settings from TOML or YAML files.
//
// A config file supplies defaults for the CLI flags; explicit flags always
// win. Keys that are omitted keep their built-in defaults:
//
//	# sbgn2sif.toml
//	workers    = 4
//	sanitize   = true
//	dot        = true
//	svg        = false
//	xlsx       = true
//	output_dir = "out"
//	sink_class = "source and sink"
//	log_level  = "info"
//
// The same keys are accepted in sbgn2sif.yaml. Unknown keys are rejected so
// typos do not silently fall back to defaults.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/sbgn2sif/pkg/errors"
	"github.com/matzehuels/sbgn2sif/pkg/pipeline"
)

// FileNames are the config files [Find] looks for, in order.
var FileNames = []string{"sbgn2sif.toml", "sbgn2sif.yaml", "sbgn2sif.yml"}

var validate = validator.New()

// Config holds every file-configurable setting.
type Config struct {
	Workers   int    `toml:"workers" yaml:"workers" validate:"min=1,max=64"`
	Sanitize  bool   `toml:"sanitize" yaml:"sanitize"`
	DOT       bool   `toml:"dot" yaml:"dot"`
	SVG       bool   `toml:"svg" yaml:"svg"`
	XLSX      bool   `toml:"xlsx" yaml:"xlsx"`
	Detailed  bool   `toml:"detailed" yaml:"detailed"`
	OutputDir string `toml:"output_dir" yaml:"output_dir" validate:"omitempty,max=4096"`
	SinkClass string `toml:"sink_class" yaml:"sink_class" validate:"required"`
	LogLevel  string `toml:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Workers:   pipeline.DefaultWorkers,
		Sanitize:  true,
		SinkClass: pipeline.DefaultSinkClass,
		LogLevel:  "info",
	}
}

// Load reads path, overlays it on [Default] and validates the result.
// The format is chosen by extension: .toml, .yaml or .yml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported config format %q (use .toml, .yaml or .yml)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Find returns the first of [FileNames] present in dir, or "" if none is.
func Find(dir string) string {
	for _, name := range FileNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, formatValidationError(err), "invalid config")
	}
	return errors.ValidateOutputDir(c.OutputDir)
}

// PipelineOptions converts the config into pipeline options.
func (c *Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Workers:   c.Workers,
		Sanitize:  c.Sanitize,
		SinkClass: c.SinkClass,
		DOT:       c.DOT,
		SVG:       c.SVG,
		Detailed:  c.Detailed,
	}
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field, tag, param := e.Field(), e.Tag(), e.Param()
		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}
	return err
}
