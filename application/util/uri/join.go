package uri

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrUnsupportedRef = errors.New("unsupported reference")

// Join resolves ref, as found on the page at base, into navigation input
// accepted by [Resolve]. Fragments are dropped.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-5.2.2
func Join(base Target, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	ref, _, _ = strings.Cut(ref, "#")
	ref = strings.ReplaceAll(ref, " ", "%20")

	if len(ref) >= len(schemeMarker) && strings.EqualFold(ref[:len(schemeMarker)], schemeMarker) {
		return ref, nil
	}
	if scheme, ok := schemeOf(ref); ok {
		return "", errors.Wrapf(ErrUnsupportedRef, "scheme %q", scheme)
	}

	if authority, found := strings.CutPrefix(ref, "//"); found {
		return schemeMarker + authority, nil
	}

	out := Target{Host: base.Host, Port: base.Port}

	refPath, refQuery, hasQuery := strings.Cut(ref, "?")
	switch {
	case refPath == "" && !hasQuery:
		out.Path = base.Path
		return out.String(), nil
	case refPath == "":
		refPath, _, _ = strings.Cut(base.RequestTarget(), "?")
	case !strings.HasPrefix(refPath, "/"):
		refPath = mergePath(base, refPath)
	}

	out.Path = strings.TrimPrefix(removeDotSegments(refPath), "/")
	if hasQuery {
		out.Path += "?" + refQuery
	}

	return out.String(), nil
}

// schemeOf reports the scheme of ref, if ref is an absolute URI.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.1
func schemeOf(ref string) (string, bool) {
	idx := strings.IndexAny(ref, ":/?#")
	if idx <= 0 || ref[idx] != ':' {
		return "", false
	}

	scheme := ref[:idx]
	for i, c := range scheme {
		alpha := ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
		if i == 0 && !alpha {
			return "", false
		}
		if !alpha && !('0' <= c && c <= '9') && c != '+' && c != '-' && c != '.' {
			return "", false
		}
	}

	return scheme, true
}

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-5.2.3
func mergePath(base Target, refPath string) string {
	basePath, _, _ := strings.Cut(base.RequestTarget(), "?")
	idx := strings.LastIndexByte(basePath, '/')
	return basePath[:idx+1] + refPath
}

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-5.2.4
func removeDotSegments(path string) string {
	out := make([]string, 0)

	for len(path) > 0 {
		var found bool
		if path, found = strings.CutPrefix(path, "../"); found {
			continue
		}
		if path, found = strings.CutPrefix(path, "./"); found {
			continue
		}

		if path, found = strings.CutPrefix(path, "/./"); found {
			path = "/" + path
			continue
		} else if path == "/." {
			path = "/"
			continue
		}

		// "/.." drops the last output segment.
		if path, found = strings.CutPrefix(path, "/../"); found {
			out = popSegment(out)
			path = "/" + path
			continue
		} else if path == "/.." {
			out = popSegment(out)
			path = "/"
			continue
		}

		if path == ".." || path == "." {
			break
		}

		// Move the first segment, with its leading "/", to the output.
		idx := strings.IndexByte(path[1:], '/') + 1
		if idx == 0 {
			idx = len(path)
		}
		out = append(out, path[:idx])
		path = path[idx:]
	}

	return strings.Join(out, "")
}

func popSegment(segments []string) []string {
	if len(segments) == 0 {
		return segments
	}
	return segments[:len(segments)-1]
}
