package status

// HTTPError is a definitive parse failure, tagged with the status code a
// server is supposed to answer with. Adding more data can never turn it back
// into a valid request.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrInvalidMethod      = NewError(BadRequest, "invalid method token")
	ErrInvalidPath        = NewError(BadRequest, "invalid URI byte")
	ErrInvalidVersion     = NewError(HTTPVersionNotSupported, "invalid or unsupported protocol version")
	ErrInvalidHeaderName  = NewError(BadRequest, "invalid header name token")
	ErrInvalidHeaderValue = NewError(BadRequest, "invalid header value byte")
	ErrMissingColon       = NewError(BadRequest, "missing colon after header name")
	ErrBadLineEnding      = NewError(BadRequest, "malformed line ending")
	ErrTooManyHeaders     = NewError(HeaderFieldsTooLarge, "too many headers")

	ErrTooLarge         = NewError(HeaderFieldsTooLarge, "too large headers section")
	ErrBadContentLength = NewError(BadRequest, "malformed content-length value")
	ErrBodyTooLarge     = NewError(RequestEntityTooLarge, "request body is too large")
	ErrBadChunk         = NewError(BadRequest, "malformed chunk-encoded data")
)
