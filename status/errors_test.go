package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	for err, code := range map[error]Code{
		ErrInvalidMethod:      BadRequest,
		ErrInvalidPath:        BadRequest,
		ErrInvalidVersion:     HTTPVersionNotSupported,
		ErrInvalidHeaderName:  BadRequest,
		ErrInvalidHeaderValue: BadRequest,
		ErrMissingColon:       BadRequest,
		ErrBadLineEnding:      BadRequest,
		ErrTooManyHeaders:     HeaderFieldsTooLarge,
		ErrTooLarge:           HeaderFieldsTooLarge,
		ErrBadContentLength:   BadRequest,
		ErrBodyTooLarge:       RequestEntityTooLarge,
	} {
		httpErr, ok := err.(HTTPError)
		require.True(t, ok)
		require.Equal(t, code, httpErr.Code)
		require.NotEmpty(t, httpErr.Error())
	}
}
