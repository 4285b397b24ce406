package publisher

import "fmt"

// NewIndexer builds the indexer for the configured backend.
func NewIndexer(cfg Config) (Indexer, error) {
	switch cfg.Backend {
	case "", BackendAlgolia:
		a, err := NewAlgoliaIndexer(cfg.AppID, cfg.AdminKey)
		if err != nil {
			return nil, err
		}
		return a, nil
	case BackendElasticsearch:
		client, err := NewElasticsearchClient(cfg.ElasticsearchURLs, cfg.AdminKey)
		if err != nil {
			return nil, err
		}
		es, err := NewElasticsearchIndexer(client)
		if err != nil {
			return nil, err
		}
		return es, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
