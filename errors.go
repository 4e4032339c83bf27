package goguard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"

	"github.com/reoring/goguard/i18n"
)

// Kind names a failure category. The set is closed.
type Kind string

// Error kinds (exported consts; names are part of the stable interface)
const (
	KindExtraKey            Kind = "ExtraKey"
	KindInvalidType         Kind = "InvalidType"
	KindNotInEnum           Kind = "NotInEnum"
	KindMissingKey          Kind = "MissingKey"
	KindInvalidArrayElement Kind = "InvalidArrayElement"
)

// Priority returns the fixed rank of the kind. Lower ranks are reported first
// when Or compares failures of its alternatives. Kinds without an assigned
// rank report 0 and therefore sort before every ranked kind.
func (k Kind) Priority() int {
	switch k {
	case KindExtraKey:
		return 1
	case KindInvalidType:
		return 2
	case KindNotInEnum:
		return 3
	case KindMissingKey:
		return 4
	case KindInvalidArrayElement:
		return 5
	}
	return 0
}

// Sentinels for errors.Is comparisons by kind.
var (
	ErrExtraKey            = &Error{Kind: KindExtraKey}
	ErrInvalidType         = &Error{Kind: KindInvalidType}
	ErrNotInEnum           = &Error{Kind: KindNotInEnum}
	ErrMissingKey          = &Error{Kind: KindMissingKey}
	ErrInvalidArrayElement = &Error{Kind: KindInvalidArrayElement}
)

// Error is the single structured failure surfaced by a validator.
type Error struct {
	Kind Kind
	// Key is the key active when the failure was raised. It is a single
	// segment, not a path; empty at the root.
	Key string
	// Values is the allowed set of a NotInEnum failure, in declaration order.
	Values []any
	// Index and Cause describe an InvalidArrayElement failure.
	Index int
	Cause *Error
}

// InvalidType reports a value whose runtime shape does not fit.
func InvalidType(key string) *Error { return &Error{Kind: KindInvalidType, Key: key} }

// NotInEnum reports a value outside the allowed literal set.
func NotInEnum(values []any, key string) *Error {
	return &Error{Kind: KindNotInEnum, Key: key, Values: values}
}

// MissingKey reports a required key absent from a record.
func MissingKey(key string) *Error { return &Error{Kind: KindMissingKey, Key: key} }

// ExtraKey reports an undeclared key in a strict record.
func ExtraKey(key string) *Error { return &Error{Kind: KindExtraKey, Key: key} }

// InvalidArrayElement reports the first failing element of a sequence.
func InvalidArrayElement(index int, cause *Error, key string) *Error {
	return &Error{Kind: KindInvalidArrayElement, Key: key, Index: index, Cause: cause}
}

// Priority is the rank of the error's kind.
func (e *Error) Priority() int { return e.Kind.Priority() }

func (e *Error) Error() string {
	data := map[string]string{"key": e.Key}
	switch e.Kind {
	case KindNotInEnum:
		data["values"] = joinValues(e.Values)
	case KindInvalidArrayElement:
		data["index"] = strconv.Itoa(e.Index)
		if e.Cause != nil {
			data["nested"] = string(e.Cause.Kind) + ": " + e.Cause.Error()
		}
	}
	return i18n.T(string(e.Kind), data)
}

// Unwrap exposes the nested element failure.
func (e *Error) Unwrap() error {
	if e.Cause == nil {
		return nil
	}
	return e.Cause
}

// Is matches on kind, and on key when the target names one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Key == "" || t.Key == e.Key
}

type errorJSON struct {
	Kind     Kind   `json:"kind"`
	Key      string `json:"key,omitempty"`
	Priority int    `json:"priority"`
	Message  string `json:"message"`
	Values   []any  `json:"values,omitempty"`
	Index    *int   `json:"index,omitempty"`
	Cause    *Error `json:"cause,omitempty"`
}

// MarshalJSON renders the error for API responses.
func (e *Error) MarshalJSON() ([]byte, error) {
	out := errorJSON{Kind: e.Kind, Key: e.Key, Priority: e.Priority(), Message: e.Error(), Values: e.Values}
	if e.Kind == KindInvalidArrayElement {
		idx := e.Index
		out.Index = &idx
		out.Cause = e.Cause
	}
	return j.Marshal(out)
}

// AsError extracts an *Error from err using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// joinValues renders enum members the way the message catalog expects
// (comma-separated, nil as "null").
func joinValues(vs []any) string {
	b := &strings.Builder{}
	for i, v := range vs {
		if i > 0 {
			b.WriteByte(',')
		}
		if v == nil {
			b.WriteString("null")
			continue
		}
		fmt.Fprint(b, v)
	}
	return b.String()
}
