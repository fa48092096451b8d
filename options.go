package storefront

// Functional options applied during construction in New. Keeping them in a
// standalone file makes every available knob discoverable at a glance.

import (
	"fmt"
	"time"

	"github.com/shopwire/storefront-client/internal/storage"
)

// Option configures a Client during construction in New.
//
// Options run before the authenticated pipeline wrapper is installed, so
// transport-related options (like debug logging) end up underneath the
// credential handling. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the timeout on both underlying http.Clients.
//
// Prefer per-request context deadlines where possible; this is a coarse
// safety net bounding the total time of a single HTTP request. Must be
// greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		c.plain.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the transport so each request/response is dumped
// to the log when enabled is true.
//
// Dumps include headers and bodies, credentials among them. Keep this off
// outside development environments.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithDurableSession persists the session to a sqlite database at path so
// it survives process restarts. Without this option the session lives in
// memory only and every start is logged out.
func WithDurableSession(path string) Option {
	return func(c *Client) error {
		if path == "" {
			return fmt.Errorf("durable session path cannot be empty")
		}
		st, err := storage.OpenSQLite(path)
		if err != nil {
			return err
		}
		c.durable = st
		return nil
	}
}
