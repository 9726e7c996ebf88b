package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtures(t *testing.T) {
	fixtures, err := Load("testdata")
	require.NoError(t, err)
	require.NotEmpty(t, fixtures)

	for _, res := range RunAll(fixtures) {
		res := res
		t.Run(res.Fixture.ID(), func(t *testing.T) {
			require.NoError(t, res.Err)
			if d := res.Divergence; d != nil {
				t.Fatalf("%v\n%s\nast:\n%s", d, d.Diff(), res.AST)
			}
		})
	}
}

func TestLoadOrder(t *testing.T) {
	fixtures, err := Load("testdata")
	require.NoError(t, err)

	var files []string
	for _, f := range fixtures {
		name := filepath.Base(f.File)
		if len(files) == 0 || files[len(files)-1] != name {
			files = append(files, name)
		}
	}
	assert.Equal(t, []string{"errors.yaml", "expressions.yaml", "modules.yaml", "statements.yaml"}, files)
}

func writeFixtures(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cases.yaml"), []byte(contents), 0o644))
	return dir
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		errMsg   string
	}{
		{"unknown key", "- name: a\n  source: a\n  output: a\n", "field output not found"},
		{"missing name", "- source: a\n", "fixture without a name"},
		{"duplicate name", "- name: a\n  source: a\n- name: a\n  source: b\n", "duplicate fixture name"},
		{"unknown entry", "- name: a\n  entry: module\n", `unknown entry point "module"`},
		{"unknown source type", "- name: a\n  source_type: json\n", `unknown source_type "json"`},
		{"error with output", "- name: a\n  source: a\n  minified: a;\n  error: x\n", "cannot expect output"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFixtures(t, tt.contents))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestRunMinifiedDivergence(t *testing.T) {
	res := Run(&Fixture{Name: "spacing", Source: "a + +b", Minified: "a++b;"})
	require.NoError(t, res.Err)
	require.NotNil(t, res.Divergence)

	d := res.Divergence
	assert.Equal(t, "spacing", d.Fixture)
	assert.Equal(t, ArtifactMinified, d.Artifact)
	assert.Equal(t, 2, d.Offset)
	assert.Equal(t, "a+ +b;", d.Got)
	assert.Equal(t, "a+{+ +}+b;", d.Diff())
	assert.Equal(t, "spacing: minified differs at byte 2", d.Error())
}

func TestRunASTDivergence(t *testing.T) {
	res := Run(&Fixture{
		Name:   "operator",
		Entry:  "expression",
		Source: "a >>= b",
		AST: `{"type": "AssignExpression", "span": "0:7", "operator": "LeftShift",
			"left": {"type": "Identifier", "span": "0:1", "name": "a"},
			"right": {"type": "Identifier", "span": "6:7", "name": "b"}}`,
	})
	require.NoError(t, res.Err)
	require.NotNil(t, res.Divergence, pretty.Sprint(res))

	d := res.Divergence
	assert.Equal(t, ArtifactAST, d.Artifact)
	assert.Equal(t, `"RightShift"`, d.Got[d.Offset-1:d.Offset+len(`RightShift"`)])
	assert.Contains(t, d.Diff(), `[-  "operator": "LeftShift",`)
	assert.Contains(t, d.Diff(), `{+  "operator": "RightShift",`)
}

func TestRunExpectedASTInvalid(t *testing.T) {
	res := Run(&Fixture{Name: "bad", Entry: "expression", Source: "a", AST: `{"type": "Identifier"}`})
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "invalid AST document")

	res = Run(&Fixture{Name: "bad json", Entry: "expression", Source: "a", AST: `{"type": `})
	require.Error(t, res.Err)
	assert.False(t, res.Passed())
}

func TestRunErrors(t *testing.T) {
	res := Run(&Fixture{Name: "unexpected success", Source: "a = 1", Error: "invalid"})
	require.NotNil(t, res.Divergence)
	assert.Equal(t, ArtifactError, res.Divergence.Artifact)
	assert.NoError(t, res.ParseErr)

	res = Run(&Fixture{Name: "unexpected failure", Source: "a 1"})
	require.NotNil(t, res.Divergence)
	assert.Equal(t, ArtifactError, res.Divergence.Artifact)
	assert.Equal(t, "missing semicolon", res.Divergence.Got)

	res = Run(&Fixture{Name: "expected failure", Source: "a 1", Error: "missing semicolon"})
	assert.True(t, res.Passed())
	assert.Error(t, res.ParseErr)
}

func TestFirstDifference(t *testing.T) {
	assert.Equal(t, 0, firstDifference("", "a"))
	assert.Equal(t, 3, firstDifference("abc", "abc"))
	assert.Equal(t, 2, firstDifference("abc", "abd"))
	assert.Equal(t, 2, firstDifference("ab", "abc"))
}
