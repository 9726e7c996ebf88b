package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/t14raptor/esparse/internal/config"
	"github.com/t14raptor/esparse/parser"
)

func runString(t *testing.T, cfg config.Config, src string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(cfg, "-", strings.NewReader(src), &out, zap.NewNop())
	return out.String(), err
}

func TestRunFormats(t *testing.T) {
	cfg := config.Default()
	out, err := runString(t, cfg, "for ([a] in b);")
	require.NoError(t, err)
	assert.Equal(t, "for([a]in b);\n", out)

	cfg.Entry = "expression"
	cfg.Format = "ast"
	out, err = runString(t, cfg, "a <<= b")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "AssignExpression", doc["type"])
	assert.Equal(t, "LeftShift", doc["operator"])
	assert.Equal(t, "0:7", doc["span"])

	cfg.Format = "dump"
	out, err = runString(t, cfg, "a <<= b")
	require.NoError(t, err)
	assert.Contains(t, out, "&ast.AssignExpression{")
	assert.Contains(t, out, `Name: "a"`)
}

func TestRunModule(t *testing.T) {
	cfg := config.Default()
	_, err := runString(t, cfg, "export const a = 1")
	require.Error(t, err)

	cfg.Module = true
	out, err := runString(t, cfg, "export const a = 1")
	require.NoError(t, err)
	assert.Equal(t, "export const a=1;\n", out)
}

func TestRunErrorLocation(t *testing.T) {
	_, err := runString(t, config.Default(), "var a = 1;\nvar b = ;\n")
	require.Error(t, err)

	msg := err.Error()
	assert.True(t, strings.HasPrefix(msg, "-:2:9: "), msg)
	assert.Contains(t, msg, "2: var b = ;")

	var syntaxErr *parser.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr))
}

func TestRunLexErrorLocation(t *testing.T) {
	_, err := runString(t, config.Default(), "a = 'b")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "-:1:5: unterminated string"), err.Error())
}

func TestDecodeSource(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"plain", []byte("a+b")},
		{"utf-8 bom", []byte("\xef\xbb\xbfa+b")},
		{"utf-16le bom", []byte{0xff, 0xfe, 'a', 0, '+', 0, 'b', 0}},
		{"utf-16be bom", []byte{0xfe, 0xff, 0, 'a', 0, '+', 0, 'b'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := decodeSource(bytes.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, "a+b", src)
		})
	}
}

func TestReadSourceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.js")
	require.NoError(t, os.WriteFile(path, []byte("let x = 1"), 0o644))

	var out bytes.Buffer
	require.NoError(t, run(config.Default(), path, nil, &out, zap.NewNop()))
	assert.Equal(t, "let x=1;\n", out.String())

	err := run(config.Default(), filepath.Join(t.TempDir(), "missing.js"), nil, &out, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening source")
}

func TestSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "esparse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: ast\nentry: statement\nmax_depth: 32\n"), 0o644))

	cfg, err := settings(args{Config: path, Format: "dump"})
	require.NoError(t, err)
	assert.Equal(t, "dump", cfg.Format)
	assert.Equal(t, "statement", cfg.Entry)
	assert.Equal(t, 32, cfg.MaxDepth)

	_, err = settings(args{Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
}

func TestRunLogsDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var out bytes.Buffer
	require.NoError(t, run(config.Default(), "-", strings.NewReader("a"), &out, zap.New(core)))

	entries := logs.FilterMessage("parsed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "-", fields["file"])
	assert.Equal(t, "program", fields["entry"])
	assert.EqualValues(t, 1, fields["bytes"])
}
