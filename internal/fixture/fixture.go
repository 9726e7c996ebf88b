// Package fixture runs YAML conformance fixtures against the parser and both
// printers.
//
// A fixture file holds a list of cases:
//
//	- name: compound assignment
//	  entry: expression
//	  source: a <<= b
//	  minified: a<<=b
//	  ast: |
//	    {"type": "AssignExpression", "span": "0:7", ...}
//
// A case with an error field expects the parse to fail with a message that
// contains it.
package fixture

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/parser"
)

// Fixture is a single conformance case.
type Fixture struct {
	// File is the path the fixture was loaded from.
	File string `yaml:"-"`

	Name       string `yaml:"name"`
	Entry      string `yaml:"entry"`
	SourceType string `yaml:"source_type"`
	Source     string `yaml:"source"`
	Minified   string `yaml:"minified"`
	AST        string `yaml:"ast"`
	Error      string `yaml:"error"`
}

// ID names the fixture in reports.
func (f *Fixture) ID() string {
	if f.File == "" {
		return f.Name
	}
	return filepath.Base(f.File) + ":" + f.Name
}

// Options returns the parser options the fixture asks for.
func (f *Fixture) Options() ([]parser.Option, error) {
	switch f.SourceType {
	case "", "script":
		return nil, nil
	case "module":
		return []parser.Option{parser.WithSourceType(ast.SourceModule)}, nil
	}
	return nil, errors.Errorf("%s: unknown source_type %q", f.ID(), f.SourceType)
}

func (f *Fixture) validate() error {
	if f.Name == "" {
		return errors.New("fixture without a name")
	}
	if _, err := parser.ParseEntryPoint(f.Entry); err != nil {
		return errors.Wrap(err, f.ID())
	}
	if _, err := f.Options(); err != nil {
		return err
	}
	if f.Error != "" && (f.Minified != "" || f.AST != "") {
		return errors.Errorf("%s: an error fixture cannot expect output", f.ID())
	}
	return nil
}

// LoadFile reads the fixtures of a single YAML file.
func LoadFile(path string) ([]*Fixture, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading fixture file")
	}
	var fixtures []*Fixture
	if err := yaml.UnmarshalStrict(buf, &fixtures); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	seen := map[string]bool{}
	for _, f := range fixtures {
		f.File = path
		if err := f.validate(); err != nil {
			return nil, err
		}
		if seen[f.Name] {
			return nil, errors.Errorf("%s: duplicate fixture name", f.ID())
		}
		seen[f.Name] = true
	}
	return fixtures, nil
}

// Load reads every .yaml and .yml file in dir, in name order.
func Load(dir string) ([]*Fixture, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "listing fixtures")
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext := filepath.Ext(e.Name()); strings.EqualFold(ext, ".yaml") || strings.EqualFold(ext, ".yml") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var all []*Fixture
	for _, name := range names {
		fixtures, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		all = append(all, fixtures...)
	}
	return all, nil
}
