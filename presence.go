package goguard

import js "github.com/reoring/goguard/jsonschema"

// Optional marks v as omissible inside an object template. A present value
// is still validated by v.
func Optional(v Validator) Validator {
	v.optional = true
	v.name = "optional(" + v.Name() + ")"
	return v
}

// TypedDefault substitutes def for a nil input before delegating to v.
// It does not make the key omissible: a field absent from a record is still
// missing unless the field is also wrapped in Optional.
func TypedDefault(v Validator, def any) Validator {
	out := newValidator("default("+v.Name()+")", func(ctx Context, value any) (any, *Error) {
		if value == nil {
			value = def
		}
		return v.run(ctx, value)
	}, func() *js.Schema {
		s := v.JSONSchema()
		cp := *s
		cp.Default = def
		return &cp
	})
	out.optional = v.optional
	return out
}
