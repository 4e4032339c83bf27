package goguard

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/reoring/goguard/internal/shape"
	js "github.com/reoring/goguard/jsonschema"
)

// Enum accepts values equal to one of allowed and returns them unchanged.
//
// Numbers compare by numeric value, so Enum(10, 20) accepts the float64 20
// produced by a JSON decoder. Other scalars compare with == and must share
// the dynamic type. nil matches a nil member. Composite members (maps,
// slices, arrays, structs, pointers, funcs and channels) never match, not even
// an identical or comparable one.
func Enum(allowed ...any) Validator {
	values := append([]any(nil), allowed...)
	return newValidator(enumName(values), func(ctx Context, v any) (any, *Error) {
		for _, a := range values {
			if enumEqual(a, v) {
				return v, nil
			}
		}
		return nil, NotInEnum(append([]any(nil), values...), ctx.Key)
	}, func() *js.Schema { return &js.Schema{Enum: append([]any(nil), values...)} })
}

func enumEqual(a, v any) bool {
	if a == nil || v == nil {
		return a == nil && v == nil
	}
	if fa, ok := shape.Number(a); ok {
		fv, ok := shape.Number(v)
		return ok && fa == fv
	}
	if reflect.TypeOf(a) != reflect.TypeOf(v) {
		return false
	}
	if !shape.Comparable(a) || !shape.Comparable(v) {
		return false
	}
	switch reflect.ValueOf(a).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer, reflect.Func, reflect.Chan:
		return false
	}
	return a == v
}

func enumName(values []any) string {
	b := &strings.Builder{}
	b.WriteString("enum(")
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		if s, ok := v.(string); ok {
			fmt.Fprintf(b, "%q", s)
			continue
		}
		fmt.Fprint(b, v)
	}
	b.WriteByte(')')
	return b.String()
}
