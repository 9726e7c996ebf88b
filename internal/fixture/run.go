package fixture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/t14raptor/esparse/astdoc"
	"github.com/t14raptor/esparse/generator"
	"github.com/t14raptor/esparse/parser"
)

// Artifacts compared by Run.
const (
	ArtifactMinified = "minified"
	ArtifactAST      = "ast"
	ArtifactReparse  = "reparse"
	ArtifactError    = "error"
)

// Divergence is the first difference between an expected and an actual
// artifact.
type Divergence struct {
	Fixture  string
	Artifact string
	// Offset is the byte offset of the first difference in Want and Got.
	Offset int
	Want   string
	Got    string
}

func (d *Divergence) Error() string {
	return fmt.Sprintf("%s: %s differs at byte %d", d.Fixture, d.Artifact, d.Offset)
}

// Diff renders the difference between Want and Got, marking deletions with
// [-...-] and insertions with {+...+}. Multi-line artifacts are diffed by
// line.
func (d *Divergence) Diff() string {
	dmp := diffmatchpatch.New()
	var diffs []diffmatchpatch.Diff
	if strings.Contains(d.Want, "\n") || strings.Contains(d.Got, "\n") {
		want, got, lines := dmp.DiffLinesToRunes(d.Want, d.Got)
		diffs = dmp.DiffCharsToLines(dmp.DiffMainRunes(want, got, false), lines)
	} else {
		diffs = dmp.DiffMain(d.Want, d.Got, false)
	}

	var b strings.Builder
	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffEqual:
			b.WriteString(diff.Text)
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + diff.Text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + diff.Text + "+}")
		}
	}
	return b.String()
}

// Result is the outcome of running one fixture.
type Result struct {
	Fixture *Fixture
	// Minified and AST hold the generated artifacts of a successful parse.
	Minified string
	AST      string
	// ParseErr is the error returned by the parser, if any.
	ParseErr error
	// Err reports a problem with the fixture itself, such as malformed
	// expected JSON.
	Err error

	Divergence *Divergence
}

// Passed reports whether every artifact matched.
func (r *Result) Passed() bool {
	return r.Err == nil && r.Divergence == nil
}

func (r *Result) diverge(artifact, want, got string) {
	if r.Divergence != nil {
		return
	}
	r.Divergence = &Divergence{
		Fixture:  r.Fixture.ID(),
		Artifact: artifact,
		Offset:   firstDifference(want, got),
		Want:     want,
		Got:      got,
	}
}

// Run parses the fixture source and compares every artifact the fixture
// names. Only the first divergence is recorded.
func Run(f *Fixture) *Result {
	res := &Result{Fixture: f}
	entry, err := parser.ParseEntryPoint(f.Entry)
	if err != nil {
		res.Err = errors.Wrap(err, f.ID())
		return res
	}
	opts, err := f.Options()
	if err != nil {
		res.Err = err
		return res
	}

	node, err := parser.Parse(f.Source, entry, opts...)
	res.ParseErr = err
	if f.Error != "" {
		switch {
		case err == nil:
			res.diverge(ArtifactError, f.Error, "")
		case !strings.Contains(err.Error(), f.Error):
			res.diverge(ArtifactError, f.Error, err.Error())
		}
		return res
	}
	if err != nil {
		res.diverge(ArtifactError, "", err.Error())
		return res
	}

	res.Minified = generator.Generate(node)
	doc, err := astdoc.JSON(node)
	if err != nil {
		res.Err = errors.Wrap(err, "printing AST document")
		return res
	}
	res.AST = string(doc)

	if f.Minified != "" && res.Minified != f.Minified {
		res.diverge(ArtifactMinified, f.Minified, res.Minified)
	}
	if f.AST != "" {
		want, err := normalizeJSON(f.AST)
		if err != nil {
			res.Err = errors.Wrapf(err, "%s: expected ast", f.ID())
			return res
		}
		if err := astdoc.Validate([]byte(want)); err != nil {
			res.Err = errors.Wrapf(err, "%s: expected ast", f.ID())
			return res
		}
		if want != res.AST {
			res.diverge(ArtifactAST, want, res.AST)
		}
	}

	// The minified text must parse to a tree that prints the same way.
	again, err := parser.Parse(res.Minified, entry, opts...)
	if err != nil {
		res.diverge(ArtifactReparse, res.Minified, err.Error())
		return res
	}
	if out := generator.Generate(again); out != res.Minified {
		res.diverge(ArtifactReparse, res.Minified, out)
	}
	return res
}

// RunAll runs every fixture in order.
func RunAll(fixtures []*Fixture) []*Result {
	results := make([]*Result, len(fixtures))
	for i, f := range fixtures {
		results[i] = Run(f)
	}
	return results
}

// normalizeJSON reindents a JSON document the way astdoc.JSON does, keeping
// key order.
func normalizeJSON(s string) (string, error) {
	var compact bytes.Buffer
	if err := json.Compact(&compact, []byte(s)); err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return "", err
	}
	return out.String(), nil
}

func firstDifference(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
