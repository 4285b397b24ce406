package publisher

import (
	"path/filepath"
	"strings"
)

// uploadTarget is a single (file, index) pair derived for one locale.
type uploadTarget struct {
	path      string // Generated index file on disk
	indexName string // Remote index the file is saved to
}

// targets derives the default-locale target followed by one target per
// configured language, in input order.
//
// The language code is lower-cased in the path segment only; the index
// name suffix uses it verbatim.
func targets(cfg Config) []uploadTarget {
	base := filepath.Join(cfg.Workspace, cfg.Directory)

	out := make([]uploadTarget, 0, 1+len(cfg.Languages))
	out = append(out, uploadTarget{
		path:      filepath.Join(base, cfg.FileName),
		indexName: cfg.IndexName,
	})

	for _, lang := range cfg.Languages {
		out = append(out, uploadTarget{
			path:      filepath.Join(base, strings.ToLower(lang), cfg.FileName),
			indexName: cfg.IndexName + cfg.Separator + lang,
		})
	}

	return out
}
