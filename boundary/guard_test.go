package boundary_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	j "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	g "github.com/reoring/goguard"
	"github.com/reoring/goguard/boundary"
)

type user struct {
	Name  string   `json:"name"`
	Age   int      `json:"age"`
	Admin bool     `json:"admin"`
	Tags  []string `json:"tags"`
}

func userValidator() g.Validator {
	return g.Object(
		g.Key("name", g.String()),
		g.Key("age", g.Optional(g.IntegerString())),
		g.Key("admin", g.BooleanString()),
		g.Key("tags", g.Array(g.String())),
	)
}

func TestGuard_CheckPasses(t *testing.T) {
	reg := prometheus.NewRegistry()
	gd, err := boundary.New(userValidator(), boundary.WithName("user"), boundary.WithRegisterer(reg))
	require.NoError(t, err)
	assert.Equal(t, "user", gd.Name())

	out, err := gd.Check(context.Background(), map[string]any{"name": "a", "admin": "true", "tags": []any{}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "a", "admin": true, "tags": []any{}}, out)

	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP goguard_checks_total Total number of guarded validations by outcome
# TYPE goguard_checks_total counter
goguard_checks_total{result="ok",validator="user"} 1
`), "goguard_checks_total"))
}

func TestGuard_RejectionIsLoggedAndCounted(t *testing.T) {
	reg := prometheus.NewRegistry()
	var buf bytes.Buffer
	gd, err := boundary.New(userValidator(),
		boundary.WithName("user"),
		boundary.WithRegisterer(reg),
		boundary.WithLogger(zerolog.New(&buf)),
		boundary.WithLevel(zerolog.WarnLevel),
	)
	require.NoError(t, err)

	_, err = gd.Check(context.Background(), map[string]any{"name": "a", "admin": "yes", "tags": []any{}})
	require.Error(t, err)
	e, ok := g.AsError(err)
	require.True(t, ok)
	assert.Equal(t, g.KindInvalidType, e.Kind)

	var event map[string]any
	require.NoError(t, j.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "warn", event["level"])
	assert.Equal(t, "user", event["validator"])
	assert.Equal(t, "InvalidType", event["kind"])
	assert.Equal(t, "admin", event["key"])
	assert.Equal(t, 2.0, event["priority"])
	assert.Equal(t, "The type of key admin is invalid.", event["error"])
	assert.Equal(t, "value rejected", event["message"])

	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP goguard_checks_total Total number of guarded validations by outcome
# TYPE goguard_checks_total counter
goguard_checks_total{result="rejected",validator="user"} 1
# HELP goguard_rejections_total Total number of rejected values by error kind
# TYPE goguard_rejections_total counter
goguard_rejections_total{kind="InvalidType",validator="user"} 1
`), "goguard_checks_total", "goguard_rejections_total"))
}

func TestGuard_LoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	ctx := l.WithContext(context.Background())

	gd, err := boundary.New(g.String())
	require.NoError(t, err)
	assert.Equal(t, "string", gd.Name())

	_, err = gd.Check(ctx, 1)
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"kind":"InvalidType"`)
	assert.Contains(t, buf.String(), `"validator":"string"`)
}

func TestGuard_NoLoggerIsSilent(t *testing.T) {
	gd, err := boundary.New(g.String())
	require.NoError(t, err)
	_, err = gd.Check(context.Background(), 1)
	require.Error(t, err)
}

func TestGuard_NilContextIsSilent(t *testing.T) {
	reg := prometheus.NewRegistry()
	gd, err := boundary.New(g.String(), boundary.WithRegisterer(reg))
	require.NoError(t, err)

	var ctx context.Context
	require.NotPanics(t, func() {
		_, err = gd.Check(ctx, 1)
	})
	requireKind(t, err, g.KindInvalidType)

	require.NotPanics(t, func() {
		err = gd.Decode(ctx, map[string]any{}, &user{})
	})
	requireKind(t, err, g.KindInvalidType)

	n, err := testutil.GatherAndCount(reg, "goguard_rejections_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func requireKind(t *testing.T, err error, kind g.Kind) {
	t.Helper()
	e, ok := g.AsError(err)
	require.True(t, ok, "want *goguard.Error, got %v", err)
	assert.Equal(t, kind, e.Kind)
}

func TestGuard_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := boundary.New(g.String(), boundary.WithName("a"), boundary.WithRegisterer(reg))
	require.NoError(t, err)
	b, err := boundary.New(g.Integer(), boundary.WithName("b"), boundary.WithRegisterer(reg))
	require.NoError(t, err)

	_, _ = a.Check(context.Background(), "x")
	_, _ = b.Check(context.Background(), "x")

	n, err := testutil.GatherAndCount(reg, "goguard_checks_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestGuard_Decode(t *testing.T) {
	gd, err := boundary.New(userValidator())
	require.NoError(t, err)

	var u user
	err = gd.Decode(context.Background(), map[string]any{
		"name":  "alice",
		"age":   "31",
		"admin": "false",
		"tags":  []any{"x", "y"},
	}, &u)
	require.NoError(t, err)
	assert.Equal(t, user{Name: "alice", Age: 31, Tags: []string{"x", "y"}}, u)
}

func TestGuard_DecodeRejects(t *testing.T) {
	gd, err := boundary.New(userValidator())
	require.NoError(t, err)

	var u user
	err = gd.Decode(context.Background(), map[string]any{"name": "alice"}, &u)
	require.Error(t, err)
	assert.True(t, errors.Is(err, g.ErrMissingKey))
	assert.False(t, errors.Is(err, boundary.ErrDecode))
}

func TestGuard_DecodeIntoWrongTarget(t *testing.T) {
	gd, err := boundary.New(g.Object(g.Key("name", g.String())))
	require.NoError(t, err)

	var n int
	err = gd.Decode(context.Background(), map[string]any{"name": "alice"}, &n)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boundary.ErrDecode))

	err = gd.Decode(context.Background(), map[string]any{"name": "alice"}, struct{}{})
	assert.True(t, errors.Is(err, boundary.ErrDecode))
}
