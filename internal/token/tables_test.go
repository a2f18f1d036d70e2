package token

import (
	"strings"
	"testing"

	"github.com/scott-ainsworth/go-ascii"
	"github.com/stretchr/testify/require"
)

const tcharDelimiters = "!#$%&'*+-.^_`|~"

func isTchar(b byte) bool {
	return ascii.IsAlnum(b) || strings.IndexByte(tcharDelimiters, b) != -1
}

func TestMethodTable(t *testing.T) {
	for b := 0; b < 256; b++ {
		require.Equalf(t, isTchar(byte(b)), Method.Has(byte(b)), "byte %#x", b)
	}
}

func TestIsMethodMatchesTable(t *testing.T) {
	// the uppercase fast path must not change the outcome for any byte
	for b := 0; b < 256; b++ {
		require.Equalf(t, Method.Has(byte(b)), IsMethod(byte(b)), "byte %#x", b)
	}
}

func TestHeaderNameTable(t *testing.T) {
	for b := 0; b < 256; b++ {
		require.Equalf(t, isTchar(byte(b)), HeaderName.Has(byte(b)), "byte %#x", b)
	}
}

func TestHeaderValueTable(t *testing.T) {
	for b := 0; b < 256; b++ {
		legal := byte(b) == '\t' || ascii.IsPrint(byte(b)) || b >= 0x80
		require.Equalf(t, legal, HeaderValue.Has(byte(b)), "byte %#x", b)
	}
}

func TestURITable(t *testing.T) {
	for b := 0; b < 256; b++ {
		legal := (ascii.IsPrint(byte(b)) && byte(b) != ' ') || b >= 0x80
		require.Equalf(t, legal, URI.Has(byte(b)), "byte %#x", b)
	}
}
