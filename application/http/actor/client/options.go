package client

import (
	"time"

	"minibrowser/application/http"
)

type Options struct {
	Send    SendOptions
	Receive ReceiveOptions
	Timeout TimeoutOptions
}

type SendOptions struct {
	// Version goes on the request line. Zero means HTTP/1.1.
	Version http.Version

	Encode http.EncodeOptions
}

type ReceiveOptions struct {
	// MaxResponseSize caps the bytes kept from one response.
	// Zero means [http.DefaultMaxResponseSize].
	MaxResponseSize uint
}

type TimeoutOptions struct {
	// ReadTimeout bounds the whole receive loop.
	// Zero waits for the peer to close, however long that takes.
	ReadTimeout time.Duration
}

func DefaultOptions() Options {
	return Options{
		Send: SendOptions{
			Version: http.Version11,
			Encode:  http.DefaultEncodeOptions,
		},
		Receive: ReceiveOptions{
			MaxResponseSize: http.DefaultMaxResponseSize,
		},
	}
}

func (o Options) withDefaults() Options {
	if o.Send.Version == (http.Version{}) {
		o.Send.Version = http.Version11
	}
	if o.Receive.MaxResponseSize == 0 {
		o.Receive.MaxResponseSize = http.DefaultMaxResponseSize
	}
	return o
}
