// Command esparse parses an ECMAScript file and prints it minified, as an AST
// document or as a Go dump of the tree.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	arg "github.com/alexflint/go-arg"
	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/astdoc"
	"github.com/t14raptor/esparse/generator"
	"github.com/t14raptor/esparse/internal/config"
	"github.com/t14raptor/esparse/parser"
)

type args struct {
	Entry          string `arg:"--entry" help:"grammar entry point: program, statement or expression"`
	Format         string `arg:"--format" help:"output format: min, ast or dump"`
	Module         bool   `arg:"--module" help:"parse the program as a module"`
	MaxDepth       int    `arg:"--max-depth" help:"maximum nesting depth"`
	ValidateRegExp bool   `arg:"--validate-regexp" help:"compile regular expression literals to check their patterns"`
	Config         string `arg:"--config" help:"YAML settings file; flags override its values"`
	Verbose        bool   `arg:"--verbose,-v" help:"log debug information"`
	File           string `arg:"positional" help:"source file, or - for standard input"`
}

func (args) Description() string {
	return "esparse parses ECMAScript source and prints the result"
}

func (a args) flags() config.Config {
	return config.Config{
		Entry:          a.Entry,
		Format:         a.Format,
		Module:         a.Module,
		MaxDepth:       a.MaxDepth,
		ValidateRegExp: a.ValidateRegExp,
		Verbose:        a.Verbose,
	}
}

func main() {
	var a args
	arg.MustParse(&a)

	cfg, err := settings(a)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	err = run(cfg, a.File, os.Stdin, os.Stdout, logger)
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// settings layers the flags over the config file over the defaults.
func settings(a args) (config.Config, error) {
	cfg := config.Default()
	if a.Config != "" {
		var err error
		if cfg, err = config.Load(a.Config); err != nil {
			return cfg, err
		}
	}
	cfg = cfg.Merge(a.flags())
	return cfg, cfg.Validate()
}

// decodeSource strips a byte order mark and converts UTF-16 input to UTF-8.
func decodeSource(r io.Reader) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	buf, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", errors.Wrap(err, "decoding source")
	}
	return string(buf), nil
}

func readSource(name string, stdin io.Reader) (string, error) {
	if name == "" || name == "-" {
		return decodeSource(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return "", errors.Wrap(err, "opening source")
	}
	defer f.Close()
	return decodeSource(f)
}

func run(cfg config.Config, name string, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	src, err := readSource(name, stdin)
	if err != nil {
		return err
	}
	if name == "" {
		name = "-"
	}

	start := time.Now()
	node, err := parser.Parse(src, cfg.EntryPoint(), cfg.Options()...)
	if err != nil {
		logger.Debug("parse failed", zap.String("file", name), zap.Error(err))
		return locate(name, src, err)
	}
	logger.Debug("parsed",
		zap.String("file", name),
		zap.Stringer("entry", cfg.EntryPoint()),
		zap.Int("bytes", len(src)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return write(cfg.Format, node, stdout)
}

func write(format string, node ast.Node, w io.Writer) error {
	var err error
	switch format {
	case "", "min":
		_, err = fmt.Fprintln(w, generator.Generate(node))
	case "ast":
		var doc []byte
		if doc, err = astdoc.JSON(node); err == nil {
			_, err = fmt.Fprintf(w, "%s\n", doc)
		}
	case "dump":
		_, err = pretty.Fprintf(w, "%# v\n", node)
	default:
		return errors.Errorf("unknown format %q", format)
	}
	return errors.Wrap(err, "writing output")
}

// locate formats a parse error with its position and the offending line.
func locate(name, src string, err error) error {
	line, col, context := parser.Locate(src, err)
	if line == 0 {
		return errors.Wrap(err, name)
	}
	return fmt.Errorf("%s:%d:%d: %w\n%s", name, line, col, err, context)
}
