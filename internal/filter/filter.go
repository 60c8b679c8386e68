// Package filter matches streamed events against CEL expressions.
//
// An expression sees two variables: kind, the event kind string, and event,
// the event's data as a map. For example:
//
//	kind == "tunnel_state" && event.state in ["connected", "error"]
package filter

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
)

// Filter is a compiled event expression.
type Filter struct {
	expr    string
	program cel.Program
}

// Compile parses and type-checks expr. The expression must evaluate to a bool.
func Compile(expr string) (*Filter, error) {
	env, err := cel.NewEnv(
		cel.Variable("kind", cel.StringType),
		cel.Variable("event", cel.DynType),
	)
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("cel compile: %w", issues.Err())
	}
	if k := ast.OutputType().Kind(); k != types.BoolKind && k != types.DynKind {
		return nil, fmt.Errorf("cel compile: %q evaluates to %s, want bool", expr, ast.OutputType())
	}

	prog, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("cel program: %w", err)
	}
	return &Filter{expr: expr, program: prog}, nil
}

// String returns the source expression.
func (f *Filter) String() string { return f.expr }

// Match evaluates the filter for one event. Missing fields, type mismatches
// and evaluation errors are a non-match.
func (f *Filter) Match(kind string, data any) bool {
	if data == nil {
		data = map[string]any{}
	}
	out, _, err := f.program.Eval(map[string]any{"kind": kind, "event": data})
	if err != nil {
		return false
	}
	if out.Type() != types.BoolType {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}
