package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
)

// objectIDField names the record field used as the document ID.
const objectIDField = "objectID"

// ElasticsearchIndexer saves records to an Elasticsearch cluster.
type ElasticsearchIndexer struct {
	client *elasticsearch.Client
}

// NewElasticsearchClient creates a client for the given node URLs.
// An empty apiKey leaves the connection unauthenticated.
func NewElasticsearchClient(urls []string, apiKey string) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: urls,
		APIKey:    apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating elasticsearch client: %w", err)
	}

	return client, nil
}

// NewElasticsearchIndexer wraps an existing client.
func NewElasticsearchIndexer(client *elasticsearch.Client) (*ElasticsearchIndexer, error) {
	if client == nil {
		return nil, errors.New("elasticsearch client must not be nil")
	}

	return &ElasticsearchIndexer{client: client}, nil
}

// SaveObjects indexes records with the bulk API. The request waits for the
// next refresh, so records are searchable when it returns. Records carrying
// an objectID replace the document with the same ID.
func (e *ElasticsearchIndexer) SaveObjects(ctx context.Context, indexName string, records []Record) error {
	return bulkIndexRecords(ctx, e.client, indexName, records)
}

// bulkIndexRecords sends records to indexName through a single-worker
// BulkIndexer. An empty slice sends nothing.
func bulkIndexRecords(ctx context.Context, client *elasticsearch.Client, indexName string, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	indexer, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Client:     client,
		Index:      indexName,
		NumWorkers: 1,
		Refresh:    "wait_for",
	})
	if err != nil {
		return fmt.Errorf("creating bulk indexer for %q: %w", indexName, err)
	}

	var failures []string
	onFailure := func(_ context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
		id := item.DocumentID
		if id == "" {
			id = "<auto>"
		}
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", id, err))
			return
		}
		failures = append(failures, fmt.Sprintf("%s: [%d] %s: %s", id, res.Status, res.Error.Type, res.Error.Reason))
	}

	for i, r := range records {
		body, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("encoding record %d: %w", i, err)
		}

		item := esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: recordID(r),
			Body:       bytes.NewReader(body),
			OnFailure:  onFailure,
		}
		if err := indexer.Add(ctx, item); err != nil {
			return fmt.Errorf("queueing record %d for %q: %w", i, indexName, err)
		}
	}

	if err := indexer.Close(ctx); err != nil {
		return fmt.Errorf("flushing records to %q: %w", indexName, err)
	}

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d records rejected by %q: %s",
			len(failures), len(records), indexName, strings.Join(failures, "; "))
	}

	if n := indexer.Stats().NumFailed; n > 0 {
		return fmt.Errorf("%d of %d records rejected by %q", n, len(records), indexName)
	}

	return nil
}

// recordID returns the record's objectID as a document ID, or "" to let
// Elasticsearch generate one.
func recordID(r Record) string {
	id, ok := r[objectIDField]
	if !ok || id == nil {
		return ""
	}
	return fmt.Sprintf("%v", id)
}
