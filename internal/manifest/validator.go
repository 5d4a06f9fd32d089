package manifest

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/package.schema.json
var schemaBytes []byte

const schemaURL = "package.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
	printer    = message.NewPrinter(language.English)
)

// ValidationResult is the outcome of checking a manifest against the schema.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is one failed schema keyword.
type ValidationIssue struct {
	Path    string // JSON pointer of the offending value, "" for the document
	Keyword string // required, type, pattern, ...
	Message string
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			schemaErr = fmt.Errorf("decoding embedded schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		if schema, err = c.Compile(schemaURL); err != nil {
			schemaErr = fmt.Errorf("compiling schema: %w", err)
		}
	})
	return schema, schemaErr
}

// Validate checks an encoded package.json document against the embedded
// schema. The error return is for malformed JSON or a broken schema;
// rule violations are reported in the result.
func Validate(data []byte) (*ValidationResult, error) {
	s, err := compiledSchema()
	if err != nil {
		return nil, err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}

	var ve *jsonschema.ValidationError
	switch err := s.Validate(inst); {
	case err == nil:
		return &ValidationResult{Valid: true}, nil
	case errors.As(err, &ve):
		return &ValidationResult{Issues: leafIssues(ve, nil)}, nil
	default:
		return nil, fmt.Errorf("validating manifest: %w", err)
	}
}

// ValidatePackage encodes p and validates the result.
func ValidatePackage(p *Package) (*ValidationResult, error) {
	data, err := Encode(p)
	if err != nil {
		return nil, err
	}
	return Validate(data)
}

// leafIssues flattens the error tree. With a flat object schema every leaf
// is a single keyword failure on the document or one of its properties.
func leafIssues(ve *jsonschema.ValidationError, out []ValidationIssue) []ValidationIssue {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			out = leafIssues(cause, out)
		}
		return out
	}

	issue := ValidationIssue{Message: ve.Error()}
	if len(ve.InstanceLocation) > 0 {
		issue.Path = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	if ve.ErrorKind != nil {
		if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
			issue.Keyword = kw[len(kw)-1]
		}
		issue.Message = ve.ErrorKind.LocalizedString(printer)
	}
	return append(out, issue)
}
