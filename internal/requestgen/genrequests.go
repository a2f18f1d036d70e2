package requestgen

import (
	"strings"

	"github.com/dchest/uniuri"
	"github.com/midgard-web/skim"
)

// Headers produces n-1 random headers plus a Host header. uniuri sticks to
// alphanumerics, which are all legal token bytes.
func Headers(n int) []skim.Header {
	hdrs := make([]skim.Header, 0, n)

	for i := 0; i < n-1; i++ {
		hdrs = append(hdrs, skim.Header{
			Name:  "X-" + uniuri.NewLen(24),
			Value: []byte(strings.Repeat("b", 100)),
		})
	}

	return append(hdrs, skim.Header{Name: "Host", Value: []byte("localhost")})
}

func HeadersBlock(hdrs []skim.Header) (buff []byte) {
	for _, h := range hdrs {
		buff = append(buff, h.Name...)
		buff = append(buff, ':', ' ')
		buff = append(buff, h.Value...)
		buff = append(buff, '\r', '\n')
	}

	return buff
}

// Generate renders a whole GET request with the given URI and headers.
func Generate(uri string, hdrs []skim.Header) (request []byte) {
	request = append(request, "GET /"+uri+" HTTP/1.1\r\n"...)
	request = append(request, HeadersBlock(hdrs)...)

	return append(request, '\r', '\n')
}
