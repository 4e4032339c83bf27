package goguard

import (
	"math"
	"strconv"

	"github.com/reoring/goguard/internal/shape"
	js "github.com/reoring/goguard/jsonschema"
)

var (
	integerV = newValidator("integer", func(ctx Context, v any) (any, *Error) {
		f, ok := shape.Number(v)
		if !ok || math.IsInf(f, 0) || f != math.Floor(f) {
			return nil, InvalidType(ctx.Key)
		}
		return v, nil
	}, func() *js.Schema { return &js.Schema{Type: "integer"} })

	integerStringV = newValidator("integer_string", func(ctx Context, v any) (any, *Error) {
		s, ok := shape.Text(v)
		if !ok {
			return nil, InvalidType(ctx.Key)
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, InvalidType(ctx.Key)
		}
		return n, nil
	}, func() *js.Schema { return &js.Schema{Type: "string", Pattern: `^[+-]?[0-9]+$`} })

	numericV = newValidator("numeric", func(ctx Context, v any) (any, *Error) {
		if !shape.IsNumber(v) {
			return nil, InvalidType(ctx.Key)
		}
		return v, nil
	}, func() *js.Schema { return &js.Schema{Type: "number"} })

	stringV = newValidator("string", func(ctx Context, v any) (any, *Error) {
		if _, ok := shape.Text(v); !ok {
			return nil, InvalidType(ctx.Key)
		}
		return v, nil
	}, func() *js.Schema { return &js.Schema{Type: "string"} })

	booleanV = newValidator("boolean", func(ctx Context, v any) (any, *Error) {
		if _, ok := shape.Bool(v); !ok {
			return nil, InvalidType(ctx.Key)
		}
		return v, nil
	}, func() *js.Schema { return &js.Schema{Type: "boolean"} })

	booleanStringV = newValidator("boolean_string", func(ctx Context, v any) (any, *Error) {
		s, ok := shape.Text(v)
		if !ok {
			return nil, InvalidType(ctx.Key)
		}
		switch s {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, InvalidType(ctx.Key)
	}, func() *js.Schema { return &js.Schema{Type: "string", Enum: []any{"true", "false"}} })
)

// Integer accepts numbers without a fractional part and returns them unchanged.
func Integer() Validator { return integerV }

// IntegerString accepts base-10 integer text and returns it as int64.
func IntegerString() Validator { return integerStringV }

// Numeric accepts any number and returns it unchanged.
func Numeric() Validator { return numericV }

// String accepts text, including the empty string.
func String() Validator { return stringV }

// Boolean accepts true and false.
func Boolean() Validator { return booleanV }

// BooleanString accepts exactly "true" or "false" and returns the bool.
func BooleanString() Validator { return booleanStringV }
