package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/geoknoesis/rdf-go-jsonld/jsonld"
	"github.com/geoknoesis/rdf-go-jsonld/rdf"
)

// Config holds the conversion settings read from a YAML file.
type Config struct {
	Prefixes        map[string]string `yaml:"prefixes"`
	BlankNodePrefix string            `yaml:"blank_node_prefix"`
	BlankGraphs     string            `yaml:"blank_graphs"`
	Output          OutputConfig      `yaml:"output"`
}

// OutputConfig controls serialization of the converted dataset.
type OutputConfig struct {
	Format      string `yaml:"format"`
	Compact     bool   `yaml:"compact"`
	Base        string `yaml:"base"`
	NativeTypes bool   `yaml:"native_types"`
	RdfType     bool   `yaml:"rdf_type"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Prefixes:        map[string]string{},
		BlankNodePrefix: jsonld.DefaultBlankNodePrefix,
		BlankGraphs:     jsonld.BlankGraphRename.String(),
		Output:          OutputConfig{Format: formatJSONLD},
	}
}

const (
	formatJSONLD   = "jsonld"
	formatNQuads   = "nquads"
	formatNTriples = "ntriples"
)

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Prefixes == nil {
		cfg.Prefixes = map[string]string{}
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, ok := jsonld.ParseBlankGraphPolicy(c.BlankGraphs); !ok {
		return fmt.Errorf("unsupported blank_graphs: %s (valid: rename, skip)", c.BlankGraphs)
	}
	switch strings.ToLower(c.Output.Format) {
	case "", formatJSONLD, formatNQuads, formatNTriples:
	default:
		return fmt.Errorf("unsupported output format: %s (valid: jsonld, nquads, ntriples)", c.Output.Format)
	}
	for prefix, iri := range c.Prefixes {
		if err := rdf.ValidateIRI(iri); err != nil {
			return fmt.Errorf("prefix %q: %w", prefix, err)
		}
	}
	if c.Output.Base != "" {
		if err := rdf.ValidateIRI(c.Output.Base); err != nil {
			return fmt.Errorf("output base: %w", err)
		}
	}
	return nil
}

// importerOptions maps the configuration onto importer options.
func (c *Config) importerOptions() []jsonld.Option {
	policy, _ := jsonld.ParseBlankGraphPolicy(c.BlankGraphs)
	return []jsonld.Option{
		jsonld.WithBlankNodePrefix(c.BlankNodePrefix),
		jsonld.WithBlankGraphPolicy(policy),
	}
}
