// Package ratelimit provides request limiters shared by every server instance.
package ratelimit

import "context"

// Limiter decides whether one more request for key fits in the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
