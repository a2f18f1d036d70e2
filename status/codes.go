package status

type Code uint16

// The subset of the IANA-registered HTTP status codes a serving layer may
// need to answer a malformed or oversized request with.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	BadRequest              Code = 400 // RFC 9110, 15.5.1
	RequestEntityTooLarge   Code = 413 // RFC 9110, 15.5.14
	RequestURITooLong       Code = 414 // RFC 9110, 15.5.15
	HeaderFieldsTooLarge    Code = 431 // RFC 6585, 5
	HTTPVersionNotSupported Code = 505 // RFC 9110, 15.6.6
)
