package reader

import (
	"io"
	"math"
	"strings"

	"github.com/indigo-web/chunkedbody"
	"github.com/indigo-web/utils/pool"
	"github.com/indigo-web/utils/strcomp"
	"github.com/midgard-web/skim"
	"github.com/midgard-web/skim/config"
	"github.com/midgard-web/skim/status"
	"github.com/midgard-web/skim/transport"
	"github.com/scott-ainsworth/go-ascii"
)

// Reader drives the parser over a connection: it owns the accumulating
// buffer, re-invokes the parse from byte zero after every arrival, and frames
// the message body once the headers are complete. One Reader serves one
// connection; a keep-alive connection reuses it via Reset.
type Reader struct {
	client   transport.Client
	request  *skim.Request
	cfg      config.Config
	buff     []byte
	body     []byte
	chunked  *chunkedbody.Parser
	bodyPool pool.ObjectPool[[]byte]
}

func New(client transport.Client, request *skim.Request, cfg config.Config) *Reader {
	return &Reader{
		client:   client,
		request:  request,
		cfg:      cfg,
		buff:     make([]byte, 0, cfg.NET.ReadBufferSize),
		chunked:  chunkedbody.NewParser(chunkedbody.DefaultSettings()),
		bodyPool: pool.NewObjectPool[[]byte](4),
	}
}

// Read accumulates data from the client until the request line and headers
// are fully parsed. The engine holds no state between invocations, so each
// arrival simply re-runs the parse over the whole accumulated buffer. The
// unconsumed tail is pushed back to the client, where body reading picks it
// up.
func (r *Reader) Read() error {
	r.buff = r.buff[:0]

	for {
		// a read may legally deliver data alongside an error, so the data is
		// always fed to the parser first
		data, readErr := r.client.Read()

		if len(r.buff)+len(data) > r.cfg.Headers.MaxBlockSize {
			return status.ErrTooLarge
		}

		r.buff = append(r.buff, data...)

		state, consumed, err := r.request.Parse(r.buff)
		switch state {
		case skim.Pending:
			if readErr != nil {
				return readErr
			}
		case skim.Complete:
			r.client.Pushback(r.buff[consumed:])
			return nil
		default:
			return err
		}
	}
}

// Body reads the whole message body, framed by Content-Length or by chunked
// transfer encoding. The returned slice is owned by the reader and stays
// valid until Reset.
func (r *Reader) Body() ([]byte, error) {
	if value, found := r.request.Header("Transfer-Encoding"); found && isChunked(value) {
		return r.chunkedBody()
	}

	length, err := r.contentLength()
	switch {
	case err != nil:
		return nil, err
	case length == 0:
		return nil, nil
	case length > r.cfg.Body.MaxSize:
		return nil, status.ErrBodyTooLarge
	}

	return r.plainBody(length)
}

// Reset recycles the body buffer and rearms the reader for the next message
// on the same connection. Any unconsumed tail stays pushed back at the
// client, so pipelined requests survive the round-trip.
func (r *Reader) Reset() {
	if r.body != nil {
		r.bodyPool.Release(r.body)
		r.body = nil
	}
}

func (r *Reader) plainBody(length int) ([]byte, error) {
	body := r.acquireBodyBuff(length)

	for len(body) < length {
		data, err := r.client.Read()

		if left := length - len(body); len(data) > left {
			r.client.Pushback(data[left:])
			data = data[:left]
		}

		body = append(body, data...)

		if err != nil && len(body) < length {
			return nil, err
		}
	}

	r.body = body

	return body, nil
}

func (r *Reader) chunkedBody() ([]byte, error) {
	_, hasTrailer := r.request.Header("Trailer")
	body := r.acquireBodyBuff(0)

	for {
		data, err := r.client.Read()
		if err != nil {
			return nil, err
		}

		chunk, extra, err := r.chunked.Parse(data, hasTrailer)
		switch err {
		case nil, io.EOF:
		default:
			return nil, status.ErrBadChunk
		}

		if len(body)+len(chunk) > r.cfg.Body.MaxSize {
			return nil, status.ErrBodyTooLarge
		}

		body = append(body, chunk...)
		r.client.Pushback(extra)

		if err == io.EOF {
			r.body = body

			return body, nil
		}
	}
}

func (r *Reader) contentLength() (int, error) {
	value, found := r.request.Header("Content-Length")
	if !found {
		return 0, nil
	}
	if len(value) == 0 {
		return 0, status.ErrBadContentLength
	}

	var length int
	for i := 0; i < len(value); i++ {
		if !ascii.IsDigit(value[i]) {
			return 0, status.ErrBadContentLength
		}

		// values big enough to wrap around stay positive, so the multiply
		// must be guarded up front
		if length > (math.MaxInt-9)/10 {
			return 0, status.ErrBadContentLength
		}

		length = length*10 + int(value[i]-'0')
	}

	return length, nil
}

func (r *Reader) acquireBodyBuff(sizeHint int) []byte {
	buff := r.bodyPool.Acquire()
	if cap(buff) < sizeHint {
		buff = make([]byte, 0, sizeHint)
	}

	return buff[:0]
}

// isChunked reports whether the final transfer coding is chunked. Codings
// applied before it are not the reader's business.
func isChunked(value string) bool {
	if comma := strings.LastIndexByte(value, ','); comma != -1 {
		value = value[comma+1:]
	}

	return strcomp.EqualFold(strings.TrimSpace(value), "chunked")
}
