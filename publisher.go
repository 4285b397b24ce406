package publisher

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Indexer saves records to a remote search index.
// Implementations must submit the whole slice as one bulk operation.
type Indexer interface {
	SaveObjects(ctx context.Context, indexName string, records []Record) error
}

// Publisher uploads generated index files for the default locale and for
// every configured language.
type Publisher struct {
	indexer Indexer
	cfg     Config
	ctx     context.Context
	logger  zerolog.Logger
	dryRun  bool
}

// New creates a new Publisher with the given indexer, configuration and options.
//
// The configuration is validated during construction, so a missing setting
// is reported before any file is read or any request is sent.
func New(indexer Indexer, cfg Config, opts ...Option) (*Publisher, error) {
	if indexer == nil {
		return nil, errors.New("publisher: indexer must not be nil")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("publisher: %w", err)
	}

	p := &Publisher{
		indexer: indexer,
		cfg:     cfg,
		ctx:     context.Background(),
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, fmt.Errorf("publisher: applying option: %w", err)
		}
	}

	return p, nil
}

// Publish uploads the default-locale file to the base index, then each
// language file to its suffixed index, one after another. It stops at the
// first error; files that do not exist are skipped.
func (p *Publisher) Publish() error {
	for _, t := range targets(p.cfg) {
		if err := p.Upload(t.path, t.indexName); err != nil {
			return err
		}
	}

	return nil
}

// Upload saves the records in the file at path to the index named indexName.
// If no regular file exists at path, Upload does nothing and returns nil.
func (p *Publisher) Upload(path, indexName string) error {
	log := p.logger.With().Str("index", indexName).Str("path", path).Logger()

	ok, err := fileExists(path)
	if err != nil {
		return fmt.Errorf("publisher: %w", err)
	}
	if !ok {
		log.Info().Msg("index file not found, skipping")
		return nil
	}

	records, err := readRecords(path)
	if err != nil {
		return fmt.Errorf("publisher: %w", err)
	}

	if p.dryRun {
		log.Info().Int("records", len(records)).Msg("dry run, not uploading")
		return nil
	}

	if err := p.indexer.SaveObjects(p.ctx, indexName, records); err != nil {
		return fmt.Errorf("publisher: %w: saving %d records to %q: %w", ErrRemoteFailure, len(records), indexName, err)
	}

	log.Info().Int("records", len(records)).Msg("index uploaded")
	return nil
}
