package publisher

import (
	"context"
	"errors"
	"fmt"

	"github.com/algolia/algoliasearch-client-go/v4/algolia/search"
)

// AlgoliaIndexer saves records to Algolia indices.
type AlgoliaIndexer struct {
	client *search.APIClient
}

// NewAlgoliaIndexer creates an indexer authenticated with a write-capable key.
func NewAlgoliaIndexer(appID, adminKey string) (*AlgoliaIndexer, error) {
	if appID == "" || adminKey == "" {
		return nil, errors.New("algolia app id and admin key are required")
	}

	client, err := search.NewClient(appID, adminKey)
	if err != nil {
		return nil, fmt.Errorf("creating algolia client: %w", err)
	}

	return &AlgoliaIndexer{client: client}, nil
}

// SaveObjects adds or replaces records by objectID. The client splits large
// arrays into batches itself; ctx bounds every batch request.
func (a *AlgoliaIndexer) SaveObjects(ctx context.Context, indexName string, records []Record) error {
	objects := make([]map[string]any, 0, len(records))
	for _, r := range records {
		objects = append(objects, r)
	}

	if _, err := a.client.SaveObjects(indexName, objects, search.WithContext(ctx)); err != nil {
		return fmt.Errorf("saving objects to %q: %w", indexName, err)
	}

	return nil
}
