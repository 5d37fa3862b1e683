package client

import (
	"net/http"
	"time"
)

// Config describes how to reach the site backend. The backend is a single
// host serving small JSON documents, so only the overall timeout and the
// connection pool size are tunable.
type Config struct {
	BaseURL string

	// Timeout bounds a whole request; a context deadline may end it sooner.
	Timeout time.Duration

	// MaxConns caps open connections to the backend. Zero means no limit.
	MaxConns int
}

func DefaultConfig() Config {
	return Config{
		BaseURL:  "http://localhost:3000",
		Timeout:  10 * time.Second,
		MaxConns: 4,
	}
}

// newHTTPClient clones the default transport and keeps at most MaxConns
// connections to the backend, all of them reusable between CLI calls.
func newHTTPClient(cfg Config) *http.Client {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.MaxConnsPerHost = cfg.MaxConns
	tr.MaxIdleConnsPerHost = cfg.MaxConns
	tr.ResponseHeaderTimeout = cfg.Timeout

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
	}
}
