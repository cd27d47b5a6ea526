package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"minibrowser/application/browser"
	"minibrowser/application/http"
	"minibrowser/application/http/actor/client"
	"minibrowser/application/util/domain"
	"minibrowser/internal/config"
	"minibrowser/internal/logger"
	"minibrowser/transport/tcp"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "minibrowser failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return errors.Wrap(err, "init logger")
	}
	defer log.Sync()

	log.Debug("minibrowser starting", zap.Any("config", cfg))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := client.DefaultOptions()
	opts.Send.Version = cfg.Version
	opts.Receive.MaxResponseSize = uint(cfg.MaxResponseBytes)
	opts.Timeout.ReadTimeout = cfg.ReadTimeout

	c := client.New(
		tcp.NewDialer(cfg.DialTimeout),
		domain.NewNetLookuper(net.DefaultResolver),
		log.Named("client"),
		clock.New(),
		opts,
	)

	nav := browser.NewNavigator(c, browser.NewTextHandler(log), os.Stdout, log.Named("navigator"))

	return repl(ctx, os.Stdin, os.Stdout, nav, cfg.Prompt)
}

type navigator interface {
	Navigate(ctx context.Context, input string) (browser.Outcome, error)
	Follow(ctx context.Context, i int) (browser.Outcome, error)
}

var _ navigator = (*browser.Navigator)(nil)

// repl reads one line per navigation until in is exhausted or ctx is done.
// A non-zero integer follows that link of the current page; anything else
// is taken as a URL. Failures are reported and the loop goes on.
func repl(ctx context.Context, in io.Reader, out io.Writer, nav navigator, prompt string) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		sc := bufio.NewScanner(in)
		sc.Buffer(make([]byte, 0, 4096), http.DefaultMaxResponseSize)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		fmt.Fprint(out, prompt)

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(out)
			if err := <-scanErr; err != nil {
				return errors.Wrap(err, "reading input")
			}
			return nil
		}

		var err error
		if i, convErr := strconv.Atoi(strings.TrimSpace(line)); convErr == nil && i != 0 {
			_, err = nav.Follow(ctx, i)
		} else {
			_, err = nav.Navigate(ctx, line)
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}
