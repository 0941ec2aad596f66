// Package config loads the optional campus.yaml next to a project's go.mod.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/campusui/campus/pkg/disclosure"
)

// FileName is the configuration file looked up by Resolve.
const FileName = "campus.yaml"

// Config represents campus.yaml.
type Config struct {
	App        AppConfig        `yaml:"app"`
	Disclosure DisclosureConfig `yaml:"disclosure"`
	Showcase   ShowcaseConfig   `yaml:"showcase"`
	Log        LogConfig        `yaml:"log"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// DisclosureConfig overrides the panel defaults for every menu.
type DisclosureConfig struct {
	ExitDuration string `yaml:"exit_duration,omitempty"`
	Side         string `yaml:"side,omitempty"`
	Align        string `yaml:"align,omitempty"`
	Offset       *int   `yaml:"offset,omitempty"`
}

// ShowcaseConfig seeds the demo screen.
type ShowcaseConfig struct {
	Courses []string  `yaml:"courses,omitempty"`
	Terms   []string  `yaml:"terms,omitempty"`
	Rates   []float64 `yaml:"rates,omitempty"`
}

// LogConfig controls CLI diagnostics.
type LogConfig struct {
	Verbose bool `yaml:"verbose,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Defaults   disclosure.Defaults
	Courses    []string
	Terms      []string
	Rates      []float64
	Verbose    bool
}

// Showcase fallbacks used when campus.yaml leaves a list empty.
var (
	DefaultCourses = []string{"Algebra I", "Biology", "Calculus", "Chemistry", "Geometry", "Statistics", "World History"}
	DefaultTerms   = []string{"Fall 2026", "Spring 2027", "Summer 2027"}
)

// LoadOptional reads campus.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads campus.yaml (if present), validates it and fills defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	defaults, err := cfg.Disclosure.resolve()
	if err != nil {
		return nil, err
	}

	for _, rate := range cfg.Showcase.Rates {
		if rate <= 0 {
			return nil, fmt.Errorf("showcase.rates must be positive (got %v)", rate)
		}
	}

	modulePath := modulePath(dir)
	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		Defaults:   defaults,
		Courses:    orDefault(cfg.Showcase.Courses, DefaultCourses),
		Terms:      orDefault(cfg.Showcase.Terms, DefaultTerms),
		Rates:      cfg.Showcase.Rates,
		Verbose:    cfg.Log.Verbose,
	}, nil
}

func (c DisclosureConfig) resolve() (disclosure.Defaults, error) {
	d := disclosure.BuiltinDefaults()

	if s := strings.TrimSpace(c.Side); s != "" {
		side, err := disclosure.ParseSide(s)
		if err != nil {
			return d, fmt.Errorf("disclosure.side: %w", err)
		}
		d.Side = side
	}
	if s := strings.TrimSpace(c.Align); s != "" {
		align, err := disclosure.ParseAlign(s)
		if err != nil {
			return d, fmt.Errorf("disclosure.align: %w", err)
		}
		d.Align = align
	}
	if c.Offset != nil {
		if *c.Offset < 0 {
			return d, fmt.Errorf("disclosure.offset cannot be negative (got %d)", *c.Offset)
		}
		d.Offset = *c.Offset
		if d.Offset == 0 {
			d.Offset = disclosure.NoOffset
		}
	}
	if s := strings.TrimSpace(c.ExitDuration); s != "" {
		exit, err := time.ParseDuration(s)
		if err != nil {
			return d, fmt.Errorf("disclosure.exit_duration: %w", err)
		}
		if exit < 0 {
			return d, fmt.Errorf("disclosure.exit_duration cannot be negative (got %s)", s)
		}
		d.ExitDuration = exit
	}
	return d, nil
}

// FindProjectRoot walks up from the current directory to find go.mod,
// falling back to the current directory.
func FindProjectRoot() (string, error) {
	start, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := start; ; {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}

func modulePath(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return ""
	}
	return modfile.ModulePath(data)
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "campus"
	}
	return base
}

func orDefault(values, fallback []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
