package cursor

// Cursor is a position-tracking scanner over a borrowed byte buffer. It never
// owns the memory it walks: every slice it hands out aliases the original
// buffer. A cursor lives for a single parse invocation and is thrown away
// afterwards, so no scanning state survives between invocations.
type Cursor struct {
	buf  []byte
	pos  int
	mark int
}

func New(buf []byte) Cursor {
	return Cursor{buf: buf}
}

// Peek returns the byte at the current position without consuming it. The
// second return value is false once the buffer is exhausted.
func (c *Cursor) Peek() (byte, bool) {
	if c.pos >= len(c.buf) {
		return 0, false
	}

	return c.buf[c.pos], true
}

// Advance moves the position one byte forward. It must be preceded by a
// successful Peek, which establishes that the byte exists.
func (c *Cursor) Advance() {
	if c.pos >= len(c.buf) {
		panic("BUG: cursor advanced past the end of the buffer")
	}

	c.pos++
}

// Mark remembers the current position as the beginning of the next slice.
func (c *Cursor) Mark() {
	c.mark = c.pos
}

// Slice returns the bytes between the last mark and the current position,
// re-marking at the current position.
func (c *Cursor) Slice() []byte {
	s := c.buf[c.mark:c.pos]
	c.mark = c.pos

	return s
}

// Pos returns the number of bytes walked from the beginning of the buffer.
func (c *Cursor) Pos() int {
	return c.pos
}
