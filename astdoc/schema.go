package astdoc

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// Schema is the JSON schema every document produced by JSON conforms to.
//
//go:embed schema.json
var Schema string

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(Schema))
	})
	return schema, schemaErr
}

// Validate checks that doc is a well-formed AST document.
func Validate(doc []byte) error {
	s, err := loadSchema()
	if err != nil {
		return errors.Wrap(err, "loading AST document schema")
	}
	res, err := s.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return errors.Wrap(err, "reading AST document")
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return errors.Errorf("invalid AST document: %s", strings.Join(msgs, "; "))
}
