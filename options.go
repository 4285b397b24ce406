package publisher

import (
	"context"

	"github.com/rs/zerolog"
)

// Option configures the Publisher.
type Option func(*Publisher) error

// WithContext sets the context passed to the indexer on every upload.
// If not set, context.Background() is used.
func WithContext(ctx context.Context) Option {
	return func(p *Publisher) error {
		p.ctx = ctx
		return nil
	}
}

// WithLogger sets the logger used to report per-target progress.
// If not set, nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Publisher) error {
		p.logger = logger
		return nil
	}
}

// DryRun makes the Publisher parse every index file but skip the remote call.
func DryRun(enabled bool) Option {
	return func(p *Publisher) error {
		p.dryRun = enabled
		return nil
	}
}
