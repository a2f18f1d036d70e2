package dummy

import (
	"io"

	"github.com/midgard-web/skim/transport"
)

var _ transport.Client = new(CircularClient)

// CircularClient replays the pieces of data it was initialised with, one
// piece per read. By default it starts over after the last piece, which
// makes it convenient for benchmarking; OneTime disables that and makes it
// report io.EOF instead.
type CircularClient struct {
	data            [][]byte
	tmp             []byte
	pointer         int
	closed, oneTime bool
}

func NewCircularClient(data ...[]byte) *CircularClient {
	return &CircularClient{
		data: data,
	}
}

func (c *CircularClient) Read() (data []byte, err error) {
	if c.closed {
		return nil, io.EOF
	}

	if len(c.tmp) > 0 {
		data, c.tmp = c.tmp, nil

		return data, nil
	}

	if c.pointer >= len(c.data) {
		if c.oneTime {
			c.closed = true
			return nil, io.EOF
		}

		c.pointer = 0
	}

	piece := c.data[c.pointer]
	c.pointer++

	return piece, nil
}

func (c *CircularClient) Pushback(takeback []byte) {
	c.tmp = takeback
}

func (c *CircularClient) Close() error {
	c.closed = true
	return nil
}

func (c *CircularClient) OneTime() *CircularClient {
	c.oneTime = true
	return c
}

var _ transport.Client = NopClient{}

// NopClient always returns an empty read and discards pushbacks. Serves as a
// placeholder wherever a client is required but never actually used.
type NopClient struct{}

func NewNopClient() NopClient {
	return NopClient{}
}

func (NopClient) Read() ([]byte, error) {
	return nil, nil
}

func (NopClient) Pushback([]byte) {}

func (NopClient) Close() error {
	return nil
}
