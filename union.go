package goguard

import (
	"strings"

	js "github.com/reoring/goguard/jsonschema"
)

// Or tries each alternative in order and returns the first success.
//
// When every alternative fails, the failure with the lowest priority rank is
// reported, earlier alternatives winning ties. Or with no alternatives fails
// every value with a contextless InvalidType.
func Or(alternatives ...Validator) Validator {
	alts := append([]Validator(nil), alternatives...)
	names := make([]string, len(alts))
	for i, a := range alts {
		names[i] = a.Name()
	}
	return newValidator("or("+strings.Join(names, ",")+")", func(ctx Context, v any) (any, *Error) {
		if len(alts) == 0 {
			return nil, InvalidType("")
		}
		var best *Error
		for _, a := range alts {
			out, e := a.run(ctx, v)
			if e == nil {
				return out, nil
			}
			if best == nil || e.Priority() < best.Priority() {
				best = e
			}
		}
		return nil, best
	}, func() *js.Schema {
		s := &js.Schema{AnyOf: make([]*js.Schema, 0, len(alts))}
		for _, a := range alts {
			s.AnyOf = append(s.AnyOf, a.JSONSchema())
		}
		return s
	})
}
