package config

type (
	NET struct {
		// ReadBufferSize is the size of the buffer a connection is read into,
		// i.e. how many bytes arrive at the parser per read at most.
		ReadBufferSize int
	}

	Headers struct {
		// MaxBlockSize bounds the accumulated request line and header block.
		// A message exceeding it fails with status.ErrTooLarge. Capacity of
		// the header collection itself belongs to the caller's slice.
		MaxBlockSize int
	}

	Body struct {
		// MaxSize bounds the message body length. A zero value rejects any
		// request carrying a body.
		MaxSize int
	}
)

type Config struct {
	NET     NET
	Headers Headers
	Body    Body
}

func Default() Config {
	return Config{
		NET: NET{
			ReadBufferSize: 4096,
		},
		Headers: Headers{
			MaxBlockSize: 64 * 1024,
		},
		Body: Body{
			MaxSize: 64 * 1024 * 1024,
		},
	}
}
