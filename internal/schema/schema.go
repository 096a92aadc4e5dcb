// Package schema validates report documents against an embedded CUE schema.
//
// The schema restates the record invariants that hold for every resolved
// play (out bounds, inning end iff three outs, cleared bases at inning end,
// invalid records carry a reason) so a consumer can check a stored report
// without linking the engine.
package schema

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed report.cue
var reportCUE string

// Validation error codes (E200-E299)
const (
	ErrSchemaCompile = "E200" // embedded schema failed to compile
	ErrParse         = "E201" // document is not valid JSON
	ErrConstraint    = "E202" // document violates the schema
)

// ValidationError represents a schema validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s: %s", e.Code, e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Source returns the CUE schema text.
func Source() string {
	return reportCUE
}

// ValidateReport checks a JSON report document against #Report.
// Returns all errors found (does not fail-fast). name is used for
// positions and may be a file path.
func ValidateReport(name string, data []byte) []ValidationError {
	ctx := cuecontext.New()

	schema := ctx.CompileString(reportCUE, cue.Filename("report.cue"))
	if err := schema.Err(); err != nil {
		return convertErrors(err, ErrSchemaCompile, "")
	}

	expr, err := cuejson.Extract(name, data)
	if err != nil {
		return convertErrors(err, ErrParse, name)
	}
	doc := ctx.BuildExpr(expr)
	if err := doc.Err(); err != nil {
		return convertErrors(err, ErrParse, name)
	}

	v := schema.LookupPath(cue.ParsePath("#Report")).Unify(doc)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return convertErrors(err, ErrConstraint, name)
	}
	return nil
}

// convertErrors flattens a CUE error list.
// Line comes from the first position inside file, when there is one.
func convertErrors(err error, code, file string) []ValidationError {
	list := errors.Errors(err)
	if len(list) == 0 {
		return []ValidationError{{Field: "document", Message: err.Error(), Code: code}}
	}

	out := make([]ValidationError, 0, len(list))
	for _, e := range list {
		field := strings.Join(e.Path(), ".")
		if field == "" {
			field = "document"
		}

		format, args := e.Msg()
		ve := ValidationError{
			Field:   field,
			Message: fmt.Sprintf(format, args...),
			Code:    code,
		}
		for _, pos := range errors.Positions(e) {
			if file == "" || pos.Filename() == file {
				ve.Line = pos.Line()
				break
			}
		}
		out = append(out, ve)
	}
	return out
}
