// Package boundary applies a goguard validator at a program boundary.
//
// A Guard wraps one validator tree and adds what a service needs around it:
// each rejection is logged as a structured zerolog event and counted in
// Prometheus collectors, and successful results can be decoded straight into
// typed structs. Settings can come from the environment (see LoadConfig).
//
//	g, err := boundary.New(userValidator,
//		boundary.WithName("user"),
//		boundary.WithRegisterer(prometheus.DefaultRegisterer),
//	)
//	var u User
//	if err := g.Decode(ctx, payload, &u); err != nil { ... }
package boundary

import (
	"context"
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	goguard "github.com/reoring/goguard"
)

// ErrDecode marks a failure to decode an accepted value into the target.
var ErrDecode = errors.New("boundary: decode")

// Guard validates candidate values against one validator. It is safe for
// concurrent use.
type Guard struct {
	validator goguard.Validator
	name      string
	logger    *zerolog.Logger
	level     zerolog.Level
	metrics   *metrics
}

type options struct {
	name      string
	logger    *zerolog.Logger
	level     zerolog.Level
	namespace string
	reg       prometheus.Registerer
}

// Option configures a Guard.
type Option func(*options)

// WithName sets the validator label used in logs and metrics. Defaults to
// the validator's Name.
func WithName(name string) Option { return func(o *options) { o.name = name } }

// WithLogger sets the logger for rejection events. Without it the logger
// attached to the call's context (zerolog.Ctx) is used; a nil context logs
// nothing.
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.logger = &l } }

// WithLevel sets the level rejection events are logged at (default debug).
func WithLevel(l zerolog.Level) Option { return func(o *options) { o.level = l } }

// WithNamespace sets the Prometheus namespace (default "goguard").
func WithNamespace(ns string) Option { return func(o *options) { o.namespace = ns } }

// WithRegisterer registers the Guard's collectors with reg. Without it the
// collectors exist but are not exported.
func WithRegisterer(reg prometheus.Registerer) Option { return func(o *options) { o.reg = reg } }

// New returns a Guard for v.
func New(v goguard.Validator, opts ...Option) (*Guard, error) {
	o := options{level: zerolog.DebugLevel, namespace: "goguard"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.name == "" {
		o.name = v.Name()
	}
	m, err := newMetrics(o.namespace, o.reg)
	if err != nil {
		return nil, fmt.Errorf("boundary: register metrics: %w", err)
	}
	return &Guard{validator: v, name: o.name, logger: o.logger, level: o.level, metrics: m}, nil
}

// Name is the label of the guarded validator.
func (g *Guard) Name() string { return g.name }

// Check validates value and returns the parsed result. A non-nil error is a
// *goguard.Error.
func (g *Guard) Check(ctx context.Context, value any) (any, error) {
	out, err := g.validator.Validate(value)
	if err != nil {
		e, _ := goguard.AsError(err)
		g.reject(ctx, e)
		return nil, err
	}
	g.metrics.accepted(g.name)
	return out, nil
}

// Decode validates value and decodes the parsed result into out, which must
// be a pointer. Struct fields are matched by their json tag.
func (g *Guard) Decode(ctx context.Context, value any, out any) error {
	parsed, err := g.Check(ctx, value)
	if err != nil {
		return err
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := dec.Decode(parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

func (g *Guard) reject(ctx context.Context, e *goguard.Error) {
	g.metrics.rejected(g.name, string(e.Kind))
	l := g.logger
	if l == nil {
		l = contextLogger(ctx)
	}
	l.WithLevel(g.level).
		Str("validator", g.name).
		Str("kind", string(e.Kind)).
		Str("key", e.Key).
		Int("priority", e.Priority()).
		Err(e).
		Msg("value rejected")
}

// contextLogger returns the logger attached to ctx, or a disabled logger when
// ctx is nil.
func contextLogger(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return zerolog.Ctx(ctx)
}
