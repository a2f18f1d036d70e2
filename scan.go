package skim

import (
	"github.com/midgard-web/skim/internal/cursor"
	"github.com/midgard-web/skim/internal/token"
	"github.com/midgard-web/skim/status"
)

// The primitives below share one contract: consume bytes while they fit the
// grammar, stop at the first byte that does not (leaving it unconsumed), and
// report Pending if the buffer runs out before a definitive answer exists.
// Callers sequence them by proceeding only after a Complete.

// skipEmptyLines consumes any number of blank lines preceding the request
// line. Some clients send a stray CRLF after a request body, which would
// otherwise break the next message on a keep-alive connection.
func skipEmptyLines(cur *cursor.Cursor) (State, error) {
	for {
		b, ok := cur.Peek()
		if !ok {
			return Pending, nil
		}

		switch b {
		case '\r':
			cur.Advance()
			next, ok := cur.Peek()
			if !ok {
				return Pending, nil
			}
			if next != '\n' {
				return Error, status.ErrBadLineEnding
			}
			cur.Advance()
		case '\n':
			cur.Advance()
		default:
			cur.Mark()
			return Complete, nil
		}
	}
}

// skipSpaces consumes optional whitespace between the header colon and the
// value. Both space and horizontal tab count, per the OWS rule.
func skipSpaces(cur *cursor.Cursor) (State, error) {
	for {
		b, ok := cur.Peek()
		if !ok {
			return Pending, nil
		}

		if b != ' ' && b != '\t' {
			cur.Mark()
			return Complete, nil
		}

		cur.Advance()
	}
}

// scanMethod consumes the method token and its single terminating space.
func scanMethod(cur *cursor.Cursor) ([]byte, State, error) {
	cur.Mark()

	for {
		b, ok := cur.Peek()
		if !ok {
			return nil, Pending, nil
		}

		if token.IsMethod(b) {
			cur.Advance()
			continue
		}

		m := cur.Slice()
		if len(m) == 0 || b != ' ' {
			return nil, Error, status.ErrInvalidMethod
		}

		cur.Advance()
		cur.Mark()

		return m, Complete, nil
	}
}

// scanPath consumes the request-target and its single terminating space.
func scanPath(cur *cursor.Cursor) ([]byte, State, error) {
	cur.Mark()

	for {
		b, ok := cur.Peek()
		if !ok {
			return nil, Pending, nil
		}

		if token.URI.Has(b) {
			cur.Advance()
			continue
		}

		p := cur.Slice()
		if len(p) == 0 || b != ' ' {
			return nil, Error, status.ErrInvalidPath
		}

		cur.Advance()
		cur.Mark()

		return p, Complete, nil
	}
}

// scanVersion matches the literal "HTTP/1." followed by a single minor
// version digit. Only minors 0 and 1 exist.
func scanVersion(cur *cursor.Cursor) (int8, State, error) {
	const prefix = "HTTP/1."

	for i := 0; i < len(prefix); i++ {
		b, ok := cur.Peek()
		if !ok {
			return -1, Pending, nil
		}
		if b != prefix[i] {
			return -1, Error, status.ErrInvalidVersion
		}

		cur.Advance()
	}

	b, ok := cur.Peek()
	if !ok {
		return -1, Pending, nil
	}
	if b != '0' && b != '1' {
		return -1, Error, status.ErrInvalidVersion
	}

	cur.Advance()
	cur.Mark()

	return int8(b - '0'), Complete, nil
}

// scanNewline consumes a single CRLF or bare LF line terminator.
func scanNewline(cur *cursor.Cursor) (State, error) {
	b, ok := cur.Peek()
	if !ok {
		return Pending, nil
	}

	switch b {
	case '\r':
		cur.Advance()
		next, ok := cur.Peek()
		if !ok {
			return Pending, nil
		}
		if next != '\n' {
			return Error, status.ErrBadLineEnding
		}
		cur.Advance()
	case '\n':
		cur.Advance()
	default:
		return Error, status.ErrBadLineEnding
	}

	cur.Mark()

	return Complete, nil
}

// scanHeaderName consumes the field name token and its terminating colon.
func scanHeaderName(cur *cursor.Cursor) ([]byte, State, error) {
	cur.Mark()

	for {
		b, ok := cur.Peek()
		if !ok {
			return nil, Pending, nil
		}

		if token.HeaderName.Has(b) {
			cur.Advance()
			continue
		}

		name := cur.Slice()
		if len(name) == 0 {
			return nil, Error, status.ErrInvalidHeaderName
		}
		if b != ':' {
			return nil, Error, status.ErrMissingColon
		}

		cur.Advance()
		cur.Mark()

		return name, Complete, nil
	}
}

// scanHeaderValue consumes the field value, which may be empty, and its line
// terminator. A carriage return is not a legal value byte, so a bare CR not
// followed by LF fails definitively rather than joining the value.
func scanHeaderValue(cur *cursor.Cursor) ([]byte, State, error) {
	cur.Mark()

	for {
		b, ok := cur.Peek()
		if !ok {
			return nil, Pending, nil
		}

		if token.HeaderValue.Has(b) {
			cur.Advance()
			continue
		}

		value := cur.Slice()

		switch b {
		case '\r':
			cur.Advance()
			next, ok := cur.Peek()
			if !ok {
				return nil, Pending, nil
			}
			if next != '\n' {
				return nil, Error, status.ErrBadLineEnding
			}
			cur.Advance()
		case '\n':
			cur.Advance()
		default:
			return nil, Error, status.ErrInvalidHeaderValue
		}

		cur.Mark()

		return value, Complete, nil
	}
}
