// Package config reads the optional YAML settings file of the esparse
// command.
package config

import (
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/parser"
)

// Formats lists the output formats of the command.
var Formats = []string{"min", "ast", "dump"}

// Config holds parse and output settings. Zero values mean "use the default".
type Config struct {
	Entry          string `yaml:"entry"`
	Format         string `yaml:"format"`
	Module         bool   `yaml:"module"`
	MaxDepth       int    `yaml:"max_depth"`
	ValidateRegExp bool   `yaml:"validate_regexp"`
	Verbose        bool   `yaml:"verbose"`
}

// Default returns the settings used when neither a file nor flags set them.
func Default() Config {
	return Config{
		Entry:    parser.EntryProgram.String(),
		Format:   "min",
		MaxDepth: parser.DefaultMaxDepth,
	}
}

// Load reads the YAML file at path on top of Default. Unknown keys are an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "opening config")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.SetStrict(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "decoding %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, path)
	}
	return cfg, nil
}

// Merge returns c with every non-zero field of o applied on top.
func (c Config) Merge(o Config) Config {
	if o.Entry != "" {
		c.Entry = o.Entry
	}
	if o.Format != "" {
		c.Format = o.Format
	}
	if o.MaxDepth != 0 {
		c.MaxDepth = o.MaxDepth
	}
	c.Module = c.Module || o.Module
	c.ValidateRegExp = c.ValidateRegExp || o.ValidateRegExp
	c.Verbose = c.Verbose || o.Verbose
	return c
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := parser.ParseEntryPoint(c.Entry); err != nil {
		return errors.WithStack(err)
	}
	known := false
	for _, f := range Formats {
		known = known || f == c.Format
	}
	if !known {
		return errors.Errorf("unknown format %q", c.Format)
	}
	if c.MaxDepth < 0 {
		return errors.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.Module && c.Entry != "" && c.Entry != parser.EntryProgram.String() {
		return errors.Errorf("module source type requires the program entry point, got %q", c.Entry)
	}
	return nil
}

// EntryPoint returns the configured entry point.
func (c Config) EntryPoint() parser.EntryPoint {
	entry, _ := parser.ParseEntryPoint(c.Entry)
	return entry
}

// Options translates the settings into parser options.
func (c Config) Options() []parser.Option {
	opts := []parser.Option{parser.WithRegExpValidation(c.ValidateRegExp)}
	if c.MaxDepth > 0 {
		opts = append(opts, parser.WithMaxDepth(c.MaxDepth))
	}
	if c.Module {
		opts = append(opts, parser.WithSourceType(ast.SourceModule))
	}
	return opts
}
