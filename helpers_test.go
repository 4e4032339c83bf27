package goguard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	g "github.com/reoring/goguard"
)

// requireFailure asserts that err is a *goguard.Error of the given kind and key.
func requireFailure(t *testing.T, err error, kind g.Kind, key string) *g.Error {
	t.Helper()
	require.Error(t, err)
	e, ok := g.AsError(err)
	require.True(t, ok, "expected *goguard.Error, got %T", err)
	require.Equal(t, kind, e.Kind, "unexpected kind: %v", e)
	require.Equal(t, key, e.Key, "unexpected key: %v", e)
	return e
}
