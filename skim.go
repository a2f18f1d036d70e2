package skim

import (
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

// State reports how far a single parse pass got.
type State uint8

const (
	// Error is a definitive protocol violation. More data can never fix it.
	Error State = iota
	// Pending means the buffer ended while everything consumed so far is a
	// valid prefix of the grammar. The caller must retry from the beginning
	// of a grown buffer.
	Pending
	// Complete means the request line and the whole header block are parsed.
	Complete
)

// Header is a single parsed header field. The name is a validated token and
// therefore safe to view as a string; the value is kept as raw bytes, as
// field values may legally carry opaque octets. Both alias the parsed buffer
// and stay valid only as long as the caller keeps it intact.
type Header struct {
	Name  string
	Value []byte
}

// Request holds the product of a parse pass. Fields are populated
// left-to-right as parsing progresses, so after a Pending or failed pass the
// already parsed fields remain inspectable: a caller may route on the method
// and path before the headers have even arrived.
type Request struct {
	// Method is the request method, e.g. "GET". Empty until parsed.
	Method string
	// Path is the request-target exactly as it appeared on the wire, without
	// any percent-decoding. Empty until parsed.
	Path string
	// Version is the minor HTTP/1 version, 0 or 1. -1 until parsed.
	Version int8
	// Headers is the filled prefix of the storage passed to NewRequest, in
	// appearance order.
	Headers []Header

	storage []Header
}

// NewRequest creates a request storing parsed headers in the given slice.
// The engine fills the slice up to its length and never grows it: a message
// carrying more headers fails with status.ErrTooManyHeaders, and retrying it
// takes a bigger slice, not more data.
func NewRequest(headers []Header) *Request {
	return &Request{
		Version: -1,
		storage: headers,
	}
}

// Header returns the value of the first header with the given name, compared
// case-insensitively. The returned string aliases the parse buffer.
func (r *Request) Header(name string) (value string, found bool) {
	for _, h := range r.Headers {
		if strcomp.EqualFold(h.Name, name) {
			return uf.B2S(h.Value), true
		}
	}

	return "", false
}

// HeaderValues returns the values of every header with the given name in
// appearance order, or nil if the header is not present.
func (r *Request) HeaderValues(name string) (values []string) {
	for _, h := range r.Headers {
		if strcomp.EqualFold(h.Name, name) {
			values = append(values, uf.B2S(h.Value))
		}
	}

	return values
}

func (r *Request) reset() {
	r.Method = ""
	r.Path = ""
	r.Version = -1
	r.Headers = r.storage[:0]
}
