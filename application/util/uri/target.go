package uri

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"minibrowser/application/util/rule"

	"github.com/pkg/errors"
)

const (
	Scheme      = "http"
	DefaultPort = "80"

	schemeMarker = Scheme + "://"
)

var ErrInvalidURL = errors.New("invalid url")

// Groups: 1 scheme marker, 2 host, 4 port, 6 path without the leading slash.
// \v is not in RE2's \s but is whitespace to [rule.IsWhitespace].
var targetPattern = regexp.MustCompile(`^(?i:(http://))?([^/:\s\v]+)(:([0-9]+))?(/([^\s\v]*))?`)

// Target is where a navigation request goes.
type Target struct {
	Host string
	Port string
	Path string // without the leading slash. Empty means root.
}

// Resolve parses input into a [Target].
// Leading whitespace is skipped and the path ends at the first whitespace,
// so a line read from a terminal can be passed as is.
func Resolve(input string) (Target, error) {
	input = strings.TrimLeftFunc(input, isSpace)

	m := targetPattern.FindStringSubmatchIndex(input)
	if m == nil {
		return Target{}, errors.Wrapf(ErrInvalidURL, "host not found in %q", strings.TrimSpace(input))
	}

	// Copy every group out of input so nothing aliases the caller's buffer.
	t := Target{
		Host: strings.Clone(input[m[4]:m[5]]),
		Port: DefaultPort,
	}

	if m[8] >= 0 {
		port := input[m[8]:m[9]]
		if err := validatePort(port); err != nil {
			return Target{}, errors.Wrapf(ErrInvalidURL, "%s", err)
		}
		t.Port = strings.Clone(port)
	}

	if m[12] >= 0 {
		t.Path = strings.Clone(input[m[12]:m[13]])
	}

	return t, nil
}

func validatePort(port string) error {
	n, err := strconv.ParseUint(port, 10, 16)
	if err != nil || n == 0 {
		return errors.Errorf("port out of range: %s", port)
	}
	return nil
}

// Addr returns host:port, suitable for logging.
func (t Target) Addr() string { return t.Host + ":" + t.Port }

// RequestTarget returns the origin-form used on the request line.
func (t Target) RequestTarget() string { return "/" + t.Path }

// PortNumber returns the port as a number. t must come from [Resolve].
func (t Target) PortNumber() uint16 {
	n, _ := strconv.ParseUint(t.Port, 10, 16)
	return uint16(n)
}

func (t Target) String() string {
	b := new(strings.Builder)
	b.WriteString(schemeMarker)
	b.WriteString(t.Host)
	if t.Port != DefaultPort && t.Port != "" {
		b.WriteByte(':')
		b.WriteString(t.Port)
	}
	b.WriteString(t.RequestTarget())
	return b.String()
}

func isSpace(r rune) bool {
	return r < utf8.RuneSelf && rule.IsWhitespace(byte(r))
}
