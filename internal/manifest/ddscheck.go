package manifest

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/dds_package.schema.json
var ddsSchemaBytes []byte

var (
	ddsSchema     *jsonschema.Schema
	ddsSchemaOnce sync.Once
	ddsSchemaErr  error
	printer       = message.NewPrinter(language.English)
)

// CheckResult is the outcome of checking a stripped package document against
// the dds package schema.
type CheckResult struct {
	Valid  bool
	Issues []CheckIssue
}

// CheckIssue is a single schema complaint.
type CheckIssue struct {
	Path    string // instance location, e.g. "/depends/0"
	Message string
}

// getDDSSchema compiles the embedded schema once and returns it.
func getDDSSchema() (*jsonschema.Schema, error) {
	ddsSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(ddsSchemaBytes))
		if err != nil {
			ddsSchemaErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("dds_package.schema.json", doc); err != nil {
			ddsSchemaErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		ddsSchema, ddsSchemaErr = c.Compile("dds_package.schema.json")
		if ddsSchemaErr != nil {
			ddsSchemaErr = fmt.Errorf("compiling schema: %w", ddsSchemaErr)
		}
	})
	return ddsSchema, ddsSchemaErr
}

// CheckDDSPackage validates JSON bytes (the StripMeta output, typically)
// against the dds package schema. The error return covers schema compilation
// and malformed input; shape complaints land in the result.
func CheckDDSPackage(data []byte) (*CheckResult, error) {
	schema, err := getDDSSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &CheckResult{Valid: true}, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &CheckResult{Issues: collectIssues(validationErr, nil)}, nil
}

// collectIssues walks the error tree and keeps the leaf-level complaints,
// which name the offending property instead of the enclosing rule.
func collectIssues(ve *jsonschema.ValidationError, issues []CheckIssue) []CheckIssue {
	if len(ve.Causes) == 0 {
		path := ""
		if len(ve.InstanceLocation) > 0 {
			path = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		msg := ve.Error()
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}
		return append(issues, CheckIssue{Path: path, Message: msg})
	}
	for _, cause := range ve.Causes {
		issues = collectIssues(cause, issues)
	}
	return issues
}
