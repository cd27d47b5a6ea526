package http

import (
	"bufio"
	"bytes"
	"testing"

	"minibrowser/application/util/uri"

	"github.com/stretchr/testify/suite"
)

type MessageEncoderTestSuite struct {
	suite.Suite
}

func TestMessageEncoderTestSuite(t *testing.T) {
	suite.Run(t, new(MessageEncoderTestSuite))
}

func (s *MessageEncoderTestSuite) TestWriteLine() {
	testcases := []struct {
		desc     string
		input    []byte
		opts     EncodeOptions
		expected string
	}{
		{
			desc:     "simple line with CRLF",
			input:    []byte("Hello"),
			expected: "Hello\r\n",
		},
		{
			desc:     "simple line with LF",
			input:    []byte("Hello"),
			opts:     EncodeOptions{UseSoleLF: true},
			expected: "Hello\n",
		},
	}

	for _, tc := range testcases {
		s.Run(tc.desc, func() {
			var buf bytes.Buffer
			me := MessageEncoder{
				bw:   bufio.NewWriter(&buf),
				opts: tc.opts,
			}

			s.NoError(me.writeLine(tc.input))
			s.NoError(me.bw.Flush())

			s.Equal(tc.expected, buf.String())
		})
	}
}

func (s *MessageEncoderTestSuite) TestEncodeHeaders() {
	testcases := []struct {
		desc     string
		headers  []Field
		expected string
	}{
		{
			desc: "simple headers with CRLF",
			headers: []Field{
				{[]byte("Host"), []byte("example.com")},
			},
			expected: "" +
				"Host: example.com\r\n" +
				"\r\n",
		},
		{
			desc:     "empty headers",
			headers:  []Field{},
			expected: "\r\n",
		},
	}

	for _, tc := range testcases {
		s.Run(tc.desc, func() {
			var buf bytes.Buffer
			me := MessageEncoder{
				bw:   bufio.NewWriter(&buf),
				opts: DefaultEncodeOptions,
			}

			s.NoError(me.encodeHeaders(tc.headers))
			s.NoError(me.bw.Flush())

			s.Equal(tc.expected, buf.String())
		})
	}
}

type RequestEncoderTestSuite struct {
	suite.Suite
}

func TestRequestEncoderTestSuite(t *testing.T) {
	suite.Run(t, new(RequestEncoderTestSuite))
}

func (s *RequestEncoderTestSuite) TestEncode() {
	testcases := []struct {
		desc     string
		target   uri.Target
		version  Version
		expected string
	}{
		{
			desc:     "root",
			target:   uri.Target{Host: "example.com", Port: "80", Path: ""},
			version:  Version11,
			expected: "GET / HTTP/1.1\r\nHost: example.com\r\n\r\n",
		},
		{
			desc:     "path with port",
			target:   uri.Target{Host: "localhost", Port: "8080", Path: "index.html"},
			version:  Version11,
			expected: "GET /index.html HTTP/1.1\r\nHost: localhost\r\n\r\n",
		},
		{
			desc:     "http 1.0",
			target:   uri.Target{Host: "example.com", Port: "80", Path: "a?b=c"},
			version:  Version10,
			expected: "GET /a?b=c HTTP/1.0\r\nHost: example.com\r\n\r\n",
		},
	}

	for _, tc := range testcases {
		s.Run(tc.desc, func() {
			buf := bytes.NewBuffer(nil)
			re := NewRequestEncoder(buf, DefaultEncodeOptions)

			s.Require().NoError(re.Encode(NewGetRequest(tc.target, tc.version)))
			s.Equal(tc.expected, buf.String())
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, bytes.ErrTooLarge }

func (s *RequestEncoderTestSuite) TestEncodeWriteFailure() {
	re := NewRequestEncoder(failingWriter{}, DefaultEncodeOptions)

	err := re.Encode(NewGetRequest(uri.Target{Host: "example.com", Port: "80"}, Version11))
	s.ErrorIs(err, bytes.ErrTooLarge)
}
