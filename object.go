package goguard

import (
	"strings"

	"github.com/reoring/goguard/internal/shape"
	js "github.com/reoring/goguard/jsonschema"
)

// Field declares one template entry.
type Field struct {
	Key       string
	Validator Validator
}

// Template is the ordered list of declared keys of an object. Declaration
// order decides which failure an object reports first.
type Template []Field

// Key declares a template field.
func Key(name string, v Validator) Field { return Field{Key: name, Validator: v} }

// Object accepts records with exactly the declared keys. Optional fields may
// be omitted; undeclared keys are rejected.
func Object(fields ...Field) Validator { return ObjectOf(fields, true) }

// InexactObject is Object without the undeclared-key check. Undeclared keys
// are dropped from the parsed result.
func InexactObject(fields ...Field) Validator { return ObjectOf(fields, false) }

// ObjectOf builds an object validator from tpl. strict toggles rejection of
// undeclared keys. A key declared twice keeps its first position and its
// last validator.
func ObjectOf(tpl Template, strict bool) Validator {
	o := &objectSchema{strict: strict, fields: dedupe(tpl)}
	o.known = make(map[string]struct{}, len(o.fields))
	for _, f := range o.fields {
		o.known[f.Key] = struct{}{}
	}
	return newValidator(o.name(), o.parse, o.jsonSchema)
}

type objectSchema struct {
	fields Template
	known  map[string]struct{}
	strict bool
}

func dedupe(tpl Template) Template {
	out := make(Template, 0, len(tpl))
	pos := make(map[string]int, len(tpl))
	for _, f := range tpl {
		if i, ok := pos[f.Key]; ok {
			out[i].Validator = f.Validator
			continue
		}
		pos[f.Key] = len(out)
		out = append(out, f)
	}
	return out
}

// parse checks every declared key without short-circuiting, then (in strict
// mode) the first undeclared key, and reports the first recorded failure.
func (o *objectSchema) parse(ctx Context, v any) (any, *Error) {
	src, ok := shape.Record(v)
	if !ok {
		return nil, InvalidType(ctx.Key)
	}
	out := make(map[string]any, len(o.fields))
	var first *Error
	record := func(e *Error) {
		if first == nil {
			first = e
		}
	}
	for _, f := range o.fields {
		val, exists := src[f.Key]
		if !exists {
			if !f.Validator.IsOptional() {
				record(MissingKey(f.Key))
			}
			continue
		}
		parsed, e := f.Validator.run(ctx.Under(f.Key), val)
		if e != nil {
			record(e)
			continue
		}
		out[f.Key] = parsed
	}
	if o.strict {
		if k, ok := o.firstUnknown(src); ok {
			record(ExtraKey(k))
		}
	}
	if first != nil {
		return nil, first
	}
	return out, nil
}

// firstUnknown returns the first undeclared key in enumeration order. Keys
// are only sorted when an undeclared key exists.
func (o *objectSchema) firstUnknown(src map[string]any) (string, bool) {
	found := false
	for k := range src {
		if _, ok := o.known[k]; !ok {
			found = true
			break
		}
	}
	if !found {
		return "", false
	}
	for _, k := range shape.Keys(src) {
		if _, ok := o.known[k]; !ok {
			return k, true
		}
	}
	return "", false
}

func (o *objectSchema) name() string {
	b := &strings.Builder{}
	if o.strict {
		b.WriteString("object{")
	} else {
		b.WriteString("inexact_object{")
	}
	for i, f := range o.fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f.Key)
		if f.Validator.IsOptional() {
			b.WriteByte('?')
		}
	}
	b.WriteByte('}')
	return b.String()
}

func (o *objectSchema) jsonSchema() *js.Schema {
	props := make(map[string]*js.Schema, len(o.fields))
	var req []string
	for _, f := range o.fields {
		props[f.Key] = f.Validator.JSONSchema()
		if !f.Validator.IsOptional() {
			req = append(req, f.Key)
		}
	}
	var additional any = true
	if o.strict {
		additional = false
	}
	return &js.Schema{Type: "object", Properties: props, Required: req, AdditionalProperties: additional}
}
