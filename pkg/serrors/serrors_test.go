package serrors_test

import (
	"errors"
	"testing"

	"cloudflarescan/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrInvalidConfig,
		serrors.ErrParse,
		serrors.ErrTransport,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection reset")

	e1 := serrors.With(serrors.ErrInvalidConfig, "missing %s", "api key")
	require.Equal(t, "missing api key", e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrTransport, base, "sending request")
	require.Equal(t, "sending request: connection reset", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrParse)
	require.Equal(t, "PARSE", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrParse, base, "decoding body")

	require.ErrorIs(t, e, serrors.ErrParse)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrTransport, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrTransport, base, "sending")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrTransport, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrTransport, base, "no route")
	require.Equal(t, serrors.ErrTransport, e.Kind())
	require.Equal(t, "no route", e.Message())
	require.Equal(t, base, e.Cause())
}
