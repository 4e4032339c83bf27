// Package goguard provides composable validators for values of unknown shape.
//
// - Primitives (Integer, IntegerString, Numeric, String, Boolean, BooleanString, Enum)
// - Combinators (Object, InexactObject, Array, Or, Optional, TypedDefault)
// - A closed error taxonomy (*Error) with a fixed priority rank per kind
//
// A validator both checks and parses: IntegerString turns "10" into int64(10),
// objects return fresh maps holding only declared keys. Inputs are values
// already decoded from JSON or YAML; the package never reads text itself.
//
// Error selection:
// - Object checks every declared key in declaration order and then, when
//   strict, the first undeclared key. The first recorded failure wins.
// - Array stops at the first failing element.
// - Or reports the failure with the lowest priority rank among its
//   alternatives (ExtraKey < InvalidType < NotInEnum < MissingKey <
//   InvalidArrayElement), earlier alternatives winning ties.
//
// Typical usage:
//
//	user := goguard.Object(
//		goguard.Key("name", goguard.String()),
//		goguard.Key("age", goguard.Optional(goguard.IntegerString())),
//	)
//	parsed, err := user.Validate(decoded)
//	if e, ok := goguard.AsError(err); ok {
//		log.Printf("%s at %q", e.Kind, e.Key)
//	}
//
// Validators are immutable and safe for concurrent use.
package goguard
