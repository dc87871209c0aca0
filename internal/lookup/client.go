// Package lookup wraps the three external read-only services the enricher
// consumes. Every client follows the same contract: a lookup either returns
// its full payload or reports "unavailable" — transport errors, bad status
// codes and malformed payloads are absorbed, never returned to the caller.
package lookup

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// NewHTTPClient builds the shared HTTP client used by all lookup clients.
// resty.Client is safe for concurrent use, so one instance serves every
// worker and keeps connections pooled across rows.
func NewHTTPClient(timeout time.Duration) *resty.Client {
	client := resty.New()
	client.SetTimeout(timeout)
	return client
}
