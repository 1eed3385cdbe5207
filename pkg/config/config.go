// Package config holds docmorph settings: page geometry applied to
// parsed documents, the HTTP listen address, and the log level.
package config

import (
	"fmt"
	"os"

	"github.com/yaklabco/docmorph/pkg/document"
)

// Config is the root configuration.
type Config struct {
	// Page controls the geometry stamped onto parsed documents.
	Page Page `yaml:"page"`

	// Server configures the HTTP conversion façade.
	Server Server `yaml:"server"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Page is page geometry in millimetres.
type Page struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	MarginLeft   float64 `yaml:"margin_left"`
	MarginRight  float64 `yaml:"margin_right"`
	MarginTop    float64 `yaml:"margin_top"`
	MarginBottom float64 `yaml:"margin_bottom"`
}

// Server holds HTTP façade settings.
type Server struct {
	Addr string `yaml:"addr"`
}

// DefaultAddr is the HTTP façade's default listen address.
const DefaultAddr = ":8080"

// Default returns the configuration used when no file is present: A4
// portrait with 10 mm margins, info logging.
func Default() *Config {
	return &Config{
		Page: Page{
			Width:        document.DefaultPageWidth,
			Height:       document.DefaultPageHeight,
			MarginLeft:   document.DefaultMargin,
			MarginRight:  document.DefaultMargin,
			MarginTop:    document.DefaultMargin,
			MarginBottom: document.DefaultMargin,
		},
		Server:   Server{Addr: DefaultAddr},
		LogLevel: "info",
	}
}

// Load reads a configuration file. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return FromYAML(data)
}

// Apply stamps the configured page geometry onto doc.
func (c *Config) Apply(doc *document.Document) {
	if doc == nil {
		return
	}
	doc.PageWidth = c.Page.Width
	doc.PageHeight = c.Page.Height
	doc.MarginLeft = c.Page.MarginLeft
	doc.MarginRight = c.Page.MarginRight
	doc.MarginTop = c.Page.MarginTop
	doc.MarginBottom = c.Page.MarginBottom
}
