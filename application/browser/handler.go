// Package browser turns classified responses into something a user can
// read, and keeps just enough state to follow a link from the last page.
package browser

import (
	"fmt"
	"strings"

	"minibrowser/application/html"
	"minibrowser/application/http"
	"minibrowser/application/http/semantic/status"

	"go.uber.org/zap"
)

type OutcomeKind uint

const (
	OutcomeNone OutcomeKind = iota
	OutcomeSuccess
	OutcomeRedirect
	OutcomeError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeRedirect:
		return "redirect"
	case OutcomeError:
		return "error"
	default:
		return "none"
	}
}

// Outcome is what one handler made of one response.
type Outcome struct {
	Kind       OutcomeKind
	Code       uint
	StatusText string

	// Location is set for redirects only. It is reported, never followed.
	Location string
	// Links holds the hrefs of a successful page, in document order.
	Links []string

	// Text is the rendering written to the display.
	Text string
}

type Handler interface {
	Success(code uint, header, body string) Outcome
	Redirect(code uint, header, body string) Outcome
	Error(code uint, statusText, header, body string) Outcome
}

// Dispatch hands res to exactly one method of h, picked by status class.
// ok is false when no handler applies (1xx, anything outside [200, 600),
// or an unmatched status line).
func Dispatch(res http.Response, h Handler) (outcome Outcome, ok bool) {
	switch status.ClassOf(res.StatusCode) {
	case status.ClassSuccessful:
		return h.Success(res.StatusCode, res.Header, res.Body), true
	case status.ClassRedirection:
		return h.Redirect(res.StatusCode, res.Header, res.Body), true
	case status.ClassClientError, status.ClassServerError:
		return h.Error(res.StatusCode, res.StatusText, res.Header, res.Body), true
	default:
		return Outcome{}, false
	}
}

// TextHandler renders outcomes as plain text.
type TextHandler struct {
	logger *zap.Logger
}

var _ Handler = (*TextHandler)(nil)

func NewTextHandler(logger *zap.Logger) *TextHandler {
	return &TextHandler{logger: logger}
}

func (h *TextHandler) Success(code uint, header, body string) Outcome {
	page, err := html.Summarize(body)
	if err != nil {
		h.logger.Warn("extracting links", zap.Error(err))
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n\n")
	sb.WriteString(body)

	if page.Title != "" || len(page.Links) > 0 {
		sb.WriteString("\n\n")
	}
	if page.Title != "" {
		fmt.Fprintf(&sb, "Title: %s\n", page.Title)
	}
	if len(page.Links) > 0 {
		sb.WriteString("Links:\n")
		for i, link := range page.Links {
			text := link.Text
			if text == "" {
				text = link.Href
			}
			fmt.Fprintf(&sb, "  [%d] %s -> %s\n", i+1, text, link.Href)
		}
	}

	return Outcome{
		Kind:       OutcomeSuccess,
		Code:       code,
		StatusText: reasonPhrase(code, ""),
		Links:      page.Hrefs(),
		Text:       sb.String(),
	}
}

func (h *TextHandler) Redirect(code uint, header, body string) Outcome {
	location, found := http.LookupField(header, "Location")

	text := fmt.Sprintf("Redirect %d", code)
	if found {
		text += fmt.Sprintf(" to %s (not followed)", location)
	} else {
		text += " without a Location field"
	}

	return Outcome{
		Kind:       OutcomeRedirect,
		Code:       code,
		StatusText: reasonPhrase(code, ""),
		Location:   location,
		Text:       text,
	}
}

func (h *TextHandler) Error(code uint, statusText, header, body string) Outcome {
	statusText = reasonPhrase(code, statusText)

	text := fmt.Sprintf("Error %d", code)
	if statusText != "" {
		text += " " + statusText
	}
	if header != "" {
		text += "\n" + header
	}
	if body != "" {
		text += "\n\n" + body
	}

	return Outcome{
		Kind:       OutcomeError,
		Code:       code,
		StatusText: statusText,
		Text:       text,
	}
}

// reasonPhrase falls back to the registered phrase when sent is empty.
func reasonPhrase(code uint, sent string) string {
	if sent != "" {
		return sent
	}
	s, _ := status.FromCode(code)
	return s.ReasonPhrase
}
