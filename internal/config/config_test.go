package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/esparse/parser"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "esparse.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "entry: expression\nformat: ast\nmax_depth: 64\nvalidate_regexp: true\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Entry:          "expression",
		Format:         "ast",
		MaxDepth:       64,
		ValidateRegExp: true,
	}, cfg)
	assert.Equal(t, parser.EntryExpression, cfg.EntryPoint())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "verbose: true\n"))
	require.NoError(t, err)

	want := Default()
	want.Verbose = true
	assert.Equal(t, want, cfg)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		errMsg   string
	}{
		{"unknown key", "entry: program\nindent: 2\n", "field indent not found"},
		{"unknown entry", "entry: module\n", `unknown entry point "module"`},
		{"unknown format", "format: pretty\n", `unknown format "pretty"`},
		{"negative depth", "max_depth: -1\n", "max_depth must not be negative"},
		{"module statement", "module: true\nentry: statement\n", "requires the program entry point"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.contents))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening config")
}

func TestMerge(t *testing.T) {
	file := Config{Entry: "statement", Format: "ast", MaxDepth: 10, Module: true}
	flags := Config{Format: "dump", Verbose: true}

	got := file.Merge(flags)
	assert.Equal(t, Config{
		Entry:    "statement",
		Format:   "dump",
		MaxDepth: 10,
		Module:   true,
		Verbose:  true,
	}, got)
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.Module = true
	cfg.MaxDepth = 8

	_, err := parser.Parse("export const a = 1", cfg.EntryPoint(), cfg.Options()...)
	assert.NoError(t, err)

	_, err = parser.Parse(strings.Repeat("(", 20)+"a"+strings.Repeat(")", 20), cfg.EntryPoint(), cfg.Options()...)
	var limit *parser.RecursionLimitError
	assert.ErrorAs(t, err, &limit)
}
