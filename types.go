package goguard

import (
	js "github.com/reoring/goguard/jsonschema"
)

// Context is the per-invocation state threaded down the validator tree.
// Key names the record key (or the key of the enclosing array) the current
// validator runs under; it is empty at the root.
type Context struct {
	Key string
}

// Root is the context of a top-level invocation.
var Root = Context{}

// Under returns the context for a child keyed by k.
func (c Context) Under(k string) Context { return Context{Key: k} }

type parseFunc func(ctx Context, v any) (any, *Error)

// Validator checks one position of an input value and parses it into its
// normalized form. Validators are immutable after construction and safe for
// concurrent use.
//
// The zero Validator rejects every value with a contextless InvalidType.
type Validator struct {
	name     string
	parse    parseFunc
	schema   func() *js.Schema
	optional bool
}

func newValidator(name string, fn parseFunc, schema func() *js.Schema) Validator {
	return Validator{name: name, parse: fn, schema: schema}
}

// Parse validates v under ctx and returns the parsed value. A non-nil error is
// always an *Error.
func (v Validator) Parse(ctx Context, value any) (any, error) {
	out, e := v.run(ctx, value)
	if e != nil {
		return nil, e
	}
	return out, nil
}

// Validate parses value at the root context.
func (v Validator) Validate(value any) (any, error) { return v.Parse(Root, value) }

// Check reports whether value conforms, discarding the parsed result.
func (v Validator) Check(value any) error {
	_, err := v.Validate(value)
	return err
}

func (v Validator) run(ctx Context, value any) (any, *Error) {
	if v.parse == nil {
		return nil, InvalidType("")
	}
	return v.parse(ctx, value)
}

// IsOptional reports whether the validator may be omitted from an object.
func (v Validator) IsOptional() bool { return v.optional }

// Name describes the validator tree, e.g. "object{a,b}" or "or(string,integer)".
func (v Validator) Name() string {
	if v.name == "" {
		return "invalid"
	}
	return v.name
}

func (v Validator) String() string { return v.Name() }

// JSONSchema projects the validator into a JSON Schema document.
func (v Validator) JSONSchema() *js.Schema {
	if v.schema == nil {
		return &js.Schema{}
	}
	return v.schema()
}

// Parse applies v at the root and asserts the parsed value to T. A parsed
// value of a different type is reported as InvalidType; a nil parsed value
// yields the zero T.
func Parse[T any](v Validator, value any) (T, error) {
	var zero T
	out, err := v.Validate(value)
	if err != nil {
		return zero, err
	}
	if out == nil {
		return zero, nil
	}
	t, ok := out.(T)
	if !ok {
		return zero, InvalidType("")
	}
	return t, nil
}
