package skim

import (
	"github.com/indigo-web/utils/uf"
	"github.com/midgard-web/skim/internal/cursor"
	"github.com/midgard-web/skim/status"
)

// Parse scans the request line and header block at the beginning of data,
// populating the request as it goes. It holds no state between calls: after
// a Pending result the caller appends freshly arrived bytes to the same
// buffer and calls Parse again, which re-derives the result from byte zero.
// Buffers are never partially committed.
//
// On Complete, consumed is the number of bytes the request line and headers
// occupied, including the final blank line, so the caller can cut them off
// and treat the remainder as the message body. On any other outcome consumed
// is zero.
func (r *Request) Parse(data []byte) (state State, consumed int, err error) {
	r.reset()
	cur := cursor.New(data)

	if state, err = skipEmptyLines(&cur); state != Complete {
		return state, 0, err
	}

	method, state, err := scanMethod(&cur)
	if state != Complete {
		return state, 0, err
	}
	r.Method = uf.B2S(method)

	path, state, err := scanPath(&cur)
	if state != Complete {
		return state, 0, err
	}
	r.Path = uf.B2S(path)

	version, state, err := scanVersion(&cur)
	if state != Complete {
		return state, 0, err
	}
	r.Version = version

	if state, err = scanNewline(&cur); state != Complete {
		return state, 0, err
	}

	if state, err = r.scanHeaders(&cur); state != Complete {
		return state, 0, err
	}

	return Complete, cur.Pos(), nil
}

// scanHeaders runs the header loop: a blank line terminates the block,
// anything else must be a full "name: value" line followed by a line
// terminator. Each completed line lands in the caller-supplied storage.
func (r *Request) scanHeaders(cur *cursor.Cursor) (State, error) {
	for {
		b, ok := cur.Peek()
		if !ok {
			return Pending, nil
		}

		switch b {
		case '\n':
			cur.Advance()
			return Complete, nil
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

			return Complete, nil
		}

		name, state, err := scanHeaderName(cur)
		if state != Complete {
			return state, err
		}

		if state, err := skipSpaces(cur); state != Complete {
			return state, err
		}

		value, state, err := scanHeaderValue(cur)
		if state != Complete {
			return state, err
		}

		n := len(r.Headers)
		if n == len(r.storage) {
			return Error, status.ErrTooManyHeaders
		}

		r.storage[n] = Header{Name: uf.B2S(name), Value: value}
		r.Headers = r.storage[:n+1]
	}
}
