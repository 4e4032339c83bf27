package goguard

import (
	"github.com/reoring/goguard/internal/shape"
	js "github.com/reoring/goguard/jsonschema"
)

// Array accepts sequences whose every element satisfies elem and returns a
// new []any of the parsed elements. Elements run under the parent context.
// Validation stops at the first failing element.
func Array(elem Validator) Validator {
	return newValidator("array("+elem.Name()+")", func(ctx Context, v any) (any, *Error) {
		src, ok := shape.Sequence(v)
		if !ok {
			return nil, InvalidType(ctx.Key)
		}
		out := make([]any, 0, len(src))
		for i := range src {
			ev, e := elem.run(ctx, src[i])
			if e != nil {
				return nil, InvalidArrayElement(i, e, ctx.Key)
			}
			out = append(out, ev)
		}
		return out, nil
	}, func() *js.Schema { return &js.Schema{Type: "array", Items: elem.JSONSchema()} })
}
