package skim

import (
	"testing"

	"github.com/midgard-web/skim/internal/cursor"
	"github.com/midgard-web/skim/status"
	"github.com/stretchr/testify/require"
)

func TestSkipEmptyLines(t *testing.T) {
	t.Run("stops at first meaningful byte", func(t *testing.T) {
		cur := cursor.New([]byte("\n\r\n\nGET"))

		state, err := skipEmptyLines(&cur)
		require.NoError(t, err)
		require.Equal(t, Complete, state)

		b, ok := cur.Peek()
		require.True(t, ok)
		require.Equal(t, byte('G'), b)
	})

	t.Run("pending at end of buffer", func(t *testing.T) {
		for _, raw := range []string{"", "\n", "\r\n", "\r"} {
			cur := cursor.New([]byte(raw))

			state, err := skipEmptyLines(&cur)
			require.NoError(t, err)
			require.Equal(t, Pending, state)
		}
	})

	t.Run("bare CR fails", func(t *testing.T) {
		cur := cursor.New([]byte("\rGET"))

		state, err := skipEmptyLines(&cur)
		require.Equal(t, Error, state)
		require.ErrorIs(t, err, status.ErrBadLineEnding)
	})
}

func TestSkipSpaces(t *testing.T) {
	t.Run("consumes spaces and tabs", func(t *testing.T) {
		cur := cursor.New([]byte("  \t value"))

		state, err := skipSpaces(&cur)
		require.NoError(t, err)
		require.Equal(t, Complete, state)
		require.Equal(t, 4, cur.Pos())
	})

	t.Run("pending at end of buffer", func(t *testing.T) {
		cur := cursor.New([]byte("   "))

		state, err := skipSpaces(&cur)
		require.NoError(t, err)
		require.Equal(t, Pending, state)
	})
}

func TestScanVersion(t *testing.T) {
	t.Run("accepted versions", func(t *testing.T) {
		for raw, minor := range map[string]int8{"HTTP/1.0\r\n": 0, "HTTP/1.1\r\n": 1} {
			cur := cursor.New([]byte(raw))

			version, state, err := scanVersion(&cur)
			require.NoError(t, err)
			require.Equal(t, Complete, state)
			require.Equal(t, minor, version)
		}
	})

	t.Run("pending inside the literal", func(t *testing.T) {
		for _, raw := range []string{"", "H", "HTTP", "HTTP/1", "HTTP/1."} {
			cur := cursor.New([]byte(raw))

			_, state, err := scanVersion(&cur)
			require.NoError(t, err)
			require.Equal(t, Pending, state)
		}
	})

	t.Run("rejected versions", func(t *testing.T) {
		for _, raw := range []string{"HTTP/2.0", "HTTP/1.2", "HTTP/1,1", "HTPT/1.1", "http/1.1"} {
			cur := cursor.New([]byte(raw))

			_, state, err := scanVersion(&cur)
			require.Equal(t, Error, state)
			require.ErrorIs(t, err, status.ErrInvalidVersion)
		}
	})
}

func TestScanMethod(t *testing.T) {
	t.Run("terminating space is consumed", func(t *testing.T) {
		cur := cursor.New([]byte("GET /"))

		m, state, err := scanMethod(&cur)
		require.NoError(t, err)
		require.Equal(t, Complete, state)
		require.Equal(t, []byte("GET"), m)

		b, ok := cur.Peek()
		require.True(t, ok)
		require.Equal(t, byte('/'), b)
	})

	t.Run("pending mid-token", func(t *testing.T) {
		cur := cursor.New([]byte("GE"))

		_, state, err := scanMethod(&cur)
		require.NoError(t, err)
		require.Equal(t, Pending, state)
	})
}
