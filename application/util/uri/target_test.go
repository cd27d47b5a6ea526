package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	testcases := []struct {
		desc     string
		input    string
		expected Target
	}{
		{
			desc:     "scheme, host, port and path",
			input:    "http://example.com:8080/index.html",
			expected: Target{Host: "example.com", Port: "8080", Path: "index.html"},
		},
		{
			desc:     "host, port and path",
			input:    "example.com:8080/index.html",
			expected: Target{Host: "example.com", Port: "8080", Path: "index.html"},
		},
		{
			desc:     "host and path",
			input:    "example.com/index.html",
			expected: Target{Host: "example.com", Port: "80", Path: "index.html"},
		},
		{
			desc:     "host only",
			input:    "example.com",
			expected: Target{Host: "example.com", Port: "80", Path: ""},
		},
		{
			desc:     "host and port",
			input:    "localhost:3000",
			expected: Target{Host: "localhost", Port: "3000", Path: ""},
		},
		{
			desc:     "vertical tab ends the path",
			input:    "example.com/foo\vbar",
			expected: Target{Host: "example.com", Port: "80", Path: "foo"},
		},
		{
			desc:     "vertical tab ends the host",
			input:    "example.com\vfoo",
			expected: Target{Host: "example.com", Port: "80", Path: ""},
		},
		{
			desc:     "leading vertical tab, form feed ends the path",
			input:    "\vexample.com:81/a\fb",
			expected: Target{Host: "example.com", Port: "81", Path: "a"},
		},
		{
			desc:     "scheme in upper case",
			input:    "HTTP://example.com/a",
			expected: Target{Host: "example.com", Port: "80", Path: "a"},
		},
		{
			desc:     "trailing newline",
			input:    "example.com/foo\n",
			expected: Target{Host: "example.com", Port: "80", Path: "foo"},
		},
		{
			desc:     "trailing CRLF after host",
			input:    "http://example.com\r\n",
			expected: Target{Host: "example.com", Port: "80", Path: ""},
		},
		{
			desc:     "leading whitespace",
			input:    "  \texample.com/a",
			expected: Target{Host: "example.com", Port: "80", Path: "a"},
		},
		{
			desc:     "embedded space ends path",
			input:    "example.com/foo bar",
			expected: Target{Host: "example.com", Port: "80", Path: "foo"},
		},
		{
			desc:     "nested path with query",
			input:    "example.com/a/b/c?x=1&y=2",
			expected: Target{Host: "example.com", Port: "80", Path: "a/b/c?x=1&y=2"},
		},
		{
			desc:     "slash only",
			input:    "example.com/",
			expected: Target{Host: "example.com", Port: "80", Path: ""},
		},
		{
			desc:     "non-digit port is left unmatched",
			input:    "example.com:http/a",
			expected: Target{Host: "example.com", Port: "80", Path: ""},
		},
		{
			desc:     "ip literal",
			input:    "127.0.0.1:8000/x",
			expected: Target{Host: "127.0.0.1", Port: "8000", Path: "x"},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			target, err := Resolve(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, target)
		})
	}
}

func TestResolveFailure(t *testing.T) {
	testcases := []struct {
		desc  string
		input string
	}{
		{desc: "empty", input: ""},
		{desc: "whitespace only", input: " \t\r\n"},
		{desc: "vertical tab and form feed only", input: "\v\f"},
		{desc: "path only", input: "/index.html"},
		{desc: "port only", input: ":80"},
		{desc: "port too large", input: "example.com:65536/"},
		{desc: "port zero", input: "example.com:0"},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			target, err := Resolve(tc.input)
			assert.ErrorIs(t, err, ErrInvalidURL)
			assert.Zero(t, target)
		})
	}
}

func TestResolveDoesNotAlias(t *testing.T) {
	buf := []byte("example.com:81/path\n")

	target, err := Resolve(string(buf))
	require.NoError(t, err)

	for i := range buf {
		buf[i] = 'x'
	}
	assert.Equal(t, Target{Host: "example.com", Port: "81", Path: "path"}, target)
}

func TestTargetString(t *testing.T) {
	testcases := []struct {
		target   Target
		expected string
		request  string
	}{
		{
			target:   Target{Host: "example.com", Port: "80", Path: ""},
			expected: "http://example.com/",
			request:  "/",
		},
		{
			target:   Target{Host: "example.com", Port: "8080", Path: "a/b"},
			expected: "http://example.com:8080/a/b",
			request:  "/a/b",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.target.String())
			assert.Equal(t, tc.request, tc.target.RequestTarget())

			// Rendering is accepted back by Resolve.
			again, err := Resolve(tc.target.String())
			require.NoError(t, err)
			assert.Equal(t, tc.target, again)
		})
	}
}

func TestTargetPortNumber(t *testing.T) {
	target, err := Resolve("example.com:65535")
	require.NoError(t, err)
	assert.Equal(t, uint16(65535), target.PortNumber())
	assert.Equal(t, "example.com:65535", target.Addr())
}
