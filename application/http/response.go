package http

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"minibrowser/application/util/rule"
)

// DefaultMaxResponseSize is the capacity of a [RawResponse] unless configured.
const DefaultMaxResponseSize = 1 << 17

// RawResponse holds every byte received for one request.
type RawResponse struct {
	Bytes []byte

	// Truncated is set when the capacity was reached.
	// Whatever the peer sent after that was discarded.
	Truncated bool
}

func (r RawResponse) Len() int { return len(r.Bytes) }

// Response is the classified form of a [RawResponse].
// All strings are copies; none refer back to the raw bytes.
type Response struct {
	Version    string
	StatusCode uint // 0 when the status line could not be matched.
	StatusText string

	// Head is everything before the first blank line, or the whole input
	// if there is none.
	Head string
	// Header is Head without the status line.
	// Equals Head when no status line was matched.
	Header string
	Body   string
}

// Groups: 1 protocol version, 2 status code, 3 status text.
var statusLinePattern = regexp.MustCompile(`^(\S+)[ \t]+([0-9]+)[ \t]*([^\r\n]*)`)

// Classify splits raw into header block and body and decodes the status
// line. It accepts any input: malformed responses come back with a zero
// status code instead of an error.
func Classify(raw RawResponse) Response {
	head, body := splitHead(raw.Bytes)

	res := Response{
		Head:   string(head),
		Header: string(head),
		Body:   string(body),
	}

	line, rest, _ := bytes.Cut(head, []byte{rule.LF})

	m := statusLinePattern.FindSubmatch(line)
	if m == nil {
		return res
	}

	code, err := strconv.ParseUint(string(m[2]), 10, 32)
	if err != nil {
		return res
	}

	res.Version = string(m[1])
	res.StatusCode = uint(code)
	res.StatusText = strings.TrimRight(string(m[3]), " \t")
	res.Header = string(rest)

	return res
}

// splitHead cuts b at the first CRLFCRLF or LFLF, whichever comes first.
func splitHead(b []byte) (head, body []byte) {
	idx, sepLen := -1, 0

	if i := bytes.Index(b, rule.CRLFCRLF); i >= 0 {
		idx, sepLen = i, len(rule.CRLFCRLF)
	}
	if i := bytes.Index(b, rule.LFLF); i >= 0 && (idx < 0 || i < idx) {
		idx, sepLen = i, len(rule.LFLF)
	}

	if idx < 0 {
		return b, nil
	}

	return b[:idx], b[idx+sepLen:]
}

// LookupField returns the value of the first field named name in header.
// Names are matched case-insensitively.
func LookupField(header, name string) (string, bool) {
	for _, field := range parseFields(header) {
		if strings.EqualFold(string(field.Name), name) {
			return string(field.Value), true
		}
	}
	return "", false
}

// parseFields parses header lines, CRLF or LF terminated.
// Lines that don't look like fields are skipped.
func parseFields(header string) []Field {
	fields := make([]Field, 0)
	for _, line := range strings.Split(header, "\n") {
		field, err := ParseField([]byte(strings.TrimSuffix(line, "\r")))
		if err != nil {
			continue
		}
		fields = append(fields, field)
	}

	return fields
}
