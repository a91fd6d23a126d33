package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/castvalue/internal/castvalue"
	"github.com/sirkon/castvalue/internal/cir"
)

const (
	defaultDebugPackage = "analyzer"
	defaultMaxPaths     = 4096
	defaultWorkers      = 4
)

// Config is castvalue settings.
type Config struct {
	// DebugPackage is the import path of inspection helpers.
	DebugPackage string `yaml:"debug_package"`

	// ReferenceFailure is what a failed dynamic cast of a reference yields.
	ReferenceFailure castvalue.ReferenceFailure `yaml:"reference_failure"`

	// MaxPaths bounds the number of paths explored per function.
	MaxPaths int `yaml:"max_paths"`

	// Workers is how many functions are explored in parallel.
	Workers int `yaml:"workers"`

	// Catalog lists cast functions besides the predefined ones.
	Catalog []CatalogEntry `yaml:"catalog"`
}

// CatalogEntry registers a custom cast function. Exactly one of Ref and
// Method is set.
type CatalogEntry struct {
	Ref    *Reference     `yaml:"ref,omitempty"`
	Method *Method        `yaml:"method,omitempty"`
	Kind   castvalue.Kind `yaml:"kind"`
}

// Signature returns the catalog signature of the entry.
func (e *CatalogEntry) Signature() castvalue.Signature {
	if e.Method != nil {
		return castvalue.Signature{
			Ref:    cir.Reference{Type: e.Method.Type, Name: e.Method.Name},
			Method: true,
		}
	}

	return castvalue.Signature{Ref: e.Ref.CIR()}
}

// Default returns settings used when no config is given.
func Default() *Config {
	return &Config{
		DebugPackage:     defaultDebugPackage,
		ReferenceFailure: castvalue.ReferenceFailureInvalid,
		MaxPaths:         defaultMaxPaths,
		Workers:          defaultWorkers,
	}
}

// Load reads the config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML settings on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DebugPackage == "" {
		return errors.New("debug_package must not be empty")
	}
	if c.MaxPaths <= 0 {
		return fmt.Errorf("max_paths must be positive, got %d", c.MaxPaths)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}

	seen := make(map[castvalue.Signature]int, len(c.Catalog))
	for i, e := range c.Catalog {
		switch {
		case e.Ref == nil && e.Method == nil:
			return fmt.Errorf("catalog[%d]: either ref or method must be set", i)
		case e.Ref != nil && e.Method != nil:
			return fmt.Errorf("catalog[%d]: ref and method are mutually exclusive", i)
		}

		if e.Kind == castvalue.KindInvalid {
			return fmt.Errorf("catalog[%d]: kind must be set", i)
		}
		if e.Kind.IsMethod() != (e.Method != nil) {
			if e.Method != nil {
				return fmt.Errorf("catalog[%d]: method %s cannot be of kind %s", i, e.Method.Name, e.Kind)
			}
			return fmt.Errorf("catalog[%d]: function %s cannot be of kind %s", i, e.Ref.Name, e.Kind)
		}

		sig := e.Signature()
		if j, ok := seen[sig]; ok {
			return fmt.Errorf("catalog[%d]: %s is already registered by catalog[%d]", i, sig, j)
		}
		seen[sig] = i
	}

	return nil
}

// CastCatalog builds the cast catalog of predefined and configured entries.
func (c *Config) CastCatalog() *castvalue.Catalog {
	custom := make(map[castvalue.Signature]castvalue.Kind, len(c.Catalog))
	for _, e := range c.Catalog {
		custom[e.Signature()] = e.Kind
	}

	return castvalue.NewCatalog(custom)
}

// Modeler creates a cast modeler with these settings.
func (c *Config) Modeler() *castvalue.Modeler {
	return castvalue.New(c.CastCatalog(), castvalue.WithReferenceFailure(c.ReferenceFailure))
}
