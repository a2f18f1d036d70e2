package transport

import (
	"net"
	"time"
)

// Client is the data source feeding the parser: it hands out chunks of bytes
// in whatever sizes the underlying connection produces, and takes back the
// tail a consumer did not use so the next read returns it first.
type Client interface {
	Read() ([]byte, error)
	Pushback([]byte)
	Close() error
}

type client struct {
	conn    net.Conn
	buff    []byte
	pending []byte
	timeout time.Duration
}

func NewClient(conn net.Conn, timeout time.Duration, buff []byte) Client {
	return &client{
		buff:    buff,
		conn:    conn,
		timeout: timeout,
	}
}

// Read returns previously pushed back data, if any, otherwise reads the
// connection into the internal buffer. Timeouts are handled automatically.
func (c *client) Read() ([]byte, error) {
	if len(c.pending) > 0 {
		pending := c.pending
		c.pending = nil

		return pending, nil
	}

	if err := c.conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return nil, err
	}

	n, err := c.conn.Read(c.buff)

	return c.buff[:n], err
}

// Pushback preserves a chunk of data from the previous read for the next one.
func (c *client) Pushback(b []byte) {
	c.pending = b
}

func (c *client) Close() error {
	return c.conn.Close()
}
