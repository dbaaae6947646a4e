// Package config loads the panel definition from an HCL file: which host
// sliders the panel tracks, and the slider blocks that seed the built-in
// demo document when no CAD host is attached.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"slider-panel/internal/host"
	"slider-panel/internal/preset"
)

// DefaultTitle is the panel window title when the config does not set one.
const DefaultTitle = "Slider Panel"

// Config is the decoded panel configuration. The tracked parameter list is
// fixed for the lifetime of an open panel; picking up an edited config
// requires closing and reopening it.
type Config struct {
	Panel   *Panel    `hcl:"panel,block"`
	Sliders []*Slider `hcl:"slider,block"`
}

// Panel declares the tracked parameters and presentation options.
type Panel struct {
	Title      string   `hcl:"title,optional"`
	Parameters []string `hcl:"parameters"`
	PresetDir  string   `hcl:"preset_dir,optional"`
}

// Slider seeds one slider of the demo document.
type Slider struct {
	Name     string  `hcl:"name,label"`
	Min      float64 `hcl:"min"`
	Max      float64 `hcl:"max"`
	Value    float64 `hcl:"value,optional"`
	Decimals int     `hcl:"decimals,optional"`
}

// Load parses and validates the config file at path.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(path, src)
}

// Parse decodes cfg from an in-memory HCL document. filename only labels
// diagnostics.
func Parse(filename string, src []byte) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse config %s: %w", filename, diags)
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decode config %s: %w", filename, diags)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	return &cfg, nil
}

// Validate checks the config for values the panel cannot work with.
func (c *Config) Validate() error {
	if c.Panel == nil {
		return fmt.Errorf("panel block is required")
	}
	if len(c.Panel.Parameters) == 0 {
		return fmt.Errorf("panel must track at least one parameter")
	}
	seen := make(map[string]bool, len(c.Panel.Parameters))
	for _, name := range c.Panel.Parameters {
		if name == "" {
			return fmt.Errorf("tracked parameter names must not be empty")
		}
		if seen[name] {
			return fmt.Errorf("tracked parameter %q listed twice", name)
		}
		seen[name] = true
	}

	sliderSeen := make(map[string]bool, len(c.Sliders))
	for _, s := range c.Sliders {
		if sliderSeen[s.Name] {
			return fmt.Errorf("slider %q defined twice", s.Name)
		}
		sliderSeen[s.Name] = true
		if s.Min > s.Max {
			return fmt.Errorf("slider %q: min %v greater than max %v", s.Name, s.Min, s.Max)
		}
		if s.Decimals < 0 {
			return fmt.Errorf("slider %q: decimals must not be negative, got %d", s.Name, s.Decimals)
		}
	}
	return nil
}

// Title returns the configured window title or the default.
func (c *Config) Title() string {
	if c.Panel.Title != "" {
		return c.Panel.Title
	}
	return DefaultTitle
}

// PresetDir returns the configured preset directory or the fixed default
// under the user's home.
func (c *Config) PresetDir() string {
	if c.Panel.PresetDir != "" {
		return c.Panel.PresetDir
	}
	return preset.DefaultDir()
}

// Document builds the in-memory demo document from the slider blocks.
// Initial values are clamped into each slider's range.
func (c *Config) Document() *host.MemDocument {
	doc := host.NewMemDocument()
	for _, s := range c.Sliders {
		v := host.Clamp(s.Value, s.Min, s.Max)
		doc.Add(host.NewMemSlider(s.Name, s.Min, s.Max, v, s.Decimals))
	}
	return doc
}
