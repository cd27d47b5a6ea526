package browser

import (
	"context"
	"fmt"
	"io"

	"minibrowser/application/http"
	"minibrowser/application/util/uri"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrNoSuchLink = errors.New("no such link")

type Fetcher interface {
	Fetch(ctx context.Context, target uri.Target) (http.RawResponse, error)
}

// Navigator drives one navigation at a time. It is not safe for
// concurrent use.
type Navigator struct {
	fetcher Fetcher
	handler Handler
	out     io.Writer
	logger  *zap.Logger

	// page and links belong to the last successful navigation.
	page  uri.Target
	links []string
}

func NewNavigator(fetcher Fetcher, handler Handler, out io.Writer, logger *zap.Logger) *Navigator {
	return &Navigator{
		fetcher: fetcher,
		handler: handler,
		out:     out,
		logger:  logger,
	}
}

// Navigate fetches input and writes whatever the matching handler made of
// the response. A response with no matching handler yields an outcome of
// kind [OutcomeNone] and writes nothing.
func (n *Navigator) Navigate(ctx context.Context, input string) (Outcome, error) {
	target, err := uri.Resolve(input)
	if err != nil {
		return Outcome{}, err
	}

	raw, err := n.fetcher.Fetch(ctx, target)
	if err != nil {
		return Outcome{}, err
	}
	if raw.Truncated {
		n.logger.Warn("response truncated",
			zap.String("target", target.String()),
			zap.Int("bytes", raw.Len()),
		)
	}

	res := http.Classify(raw)

	outcome, ok := Dispatch(res, n.handler)
	if !ok {
		n.logger.Info("no handler for response",
			zap.String("target", target.String()),
			zap.Uint("code", res.StatusCode),
		)
		return Outcome{}, nil
	}

	if outcome.Kind == OutcomeSuccess {
		n.page = target
		n.links = outcome.Links
	}

	if _, err := fmt.Fprintln(n.out, outcome.Text); err != nil {
		return outcome, errors.Wrap(err, "writing outcome")
	}

	return outcome, nil
}

// Follow navigates to the i-th (1-based) link of the last successful page.
func (n *Navigator) Follow(ctx context.Context, i int) (Outcome, error) {
	if i < 1 || i > len(n.links) {
		return Outcome{}, errors.Wrapf(ErrNoSuchLink, "link %d of %d", i, len(n.links))
	}

	next, err := uri.Join(n.page, n.links[i-1])
	if err != nil {
		return Outcome{}, err
	}

	n.logger.Debug("following link", zap.Int("index", i), zap.String("to", next))

	return n.Navigate(ctx, next)
}

// Links returns the hrefs of the last successful page.
func (n *Navigator) Links() []string { return n.links }
