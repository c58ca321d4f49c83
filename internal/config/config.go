// Package config holds the settings for the annotate and routes commands.
//
// Defaults reproduce the conventional project layout (controller/<platform>
// trees and a routes/ tree). A YAML or JSON file may override any of them,
// and command-line flags override the file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Annotate Annotate `json:"annotate" yaml:"annotate"`
	Routes   Routes   `json:"routes" yaml:"routes"`
	Log      Log      `json:"log" yaml:"log"`
}

// Annotate configures the controller annotator.
type Annotate struct {
	RootDirs      []string `json:"root_dirs" yaml:"root_dirs" validate:"required,min=1,dive,required"`
	SourceExt     string   `json:"source_ext" yaml:"source_ext" validate:"required,startswith=."`
	IndexFile     string   `json:"index_file" yaml:"index_file" validate:"required"`
	ControllerDir string   `json:"controller_dir" yaml:"controller_dir" validate:"required"`
	Platforms     []string `json:"platforms" yaml:"platforms" validate:"required,min=1,dive,required"`
	Markers       []string `json:"markers" yaml:"markers" validate:"required,min=1,dive,required"`
	DefaultEntity string   `json:"default_entity" yaml:"default_entity" validate:"required"`
	DryRun        bool     `json:"dry_run" yaml:"dry_run"`
}

// Routes configures the route aggregator.
type Routes struct {
	RootDir         string `json:"root_dir" yaml:"root_dir" validate:"required"`
	OutputPath      string `json:"output_path" yaml:"output_path" validate:"required"`
	Format          string `json:"format" yaml:"format" validate:"oneof=yaml json"`
	SourceExt       string `json:"source_ext" yaml:"source_ext" validate:"required,startswith=."`
	Title           string `json:"title" yaml:"title" validate:"required"`
	Version         string `json:"version" yaml:"version" validate:"required"`
	SecuritySchemes bool   `json:"security_schemes" yaml:"security_schemes"`
}

type Log struct {
	Level string `json:"level" yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	File  string `json:"file" yaml:"file"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Annotate: Annotate{
			RootDirs: []string{
				"./controller/admin",
				"./controller/client",
				"./controller/device",
			},
			SourceExt:     ".js",
			IndexFile:     "index.js",
			ControllerDir: "controller",
			Platforms:     []string{"admin", "client", "device"},
			Markers:       []string{"@openapi", "@swagger"},
			DefaultEntity: "Resource",
		},
		Routes: Routes{
			RootDir:    "./routes",
			OutputPath: "./docs/api_all.yml",
			Format:     "yaml",
			SourceExt:  ".js",
			Title:      "Node DHI Auto-Generated API",
			Version:    "1.0.0",
		},
		Log: Log{Level: "info"},
	}
}

// Load merges the file at path into cfg. Files ending in .json are decoded as
// JSON, anything else as YAML. Keys absent from the file keep their value.
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config file: %w", err)
		}
		return nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every section.
func (c *Config) Validate() error {
	return check(c)
}

// ValidateAnnotate checks the sections the annotate command reads.
func (c *Config) ValidateAnnotate() error {
	return check(&c.Annotate, &c.Log)
}

// ValidateRoutes checks the sections the routes command reads.
func (c *Config) ValidateRoutes() error {
	return check(&c.Routes, &c.Log)
}

func check(sections ...any) error {
	var msgs []string
	for _, section := range sections {
		err := validate.Struct(section)
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("invalid config: %w", err)
		}
		for _, fe := range verrs {
			msgs = append(msgs, describe(fe))
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	case "startswith":
		return fmt.Sprintf("%s must start with %q, got %q", field, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
