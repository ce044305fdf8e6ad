// Package histsearch implements the Ctrl-R reverse history search
// described in SPEC_FULL.md §3.1. Grounded directly on
// toba-jig/internal/todo/search/index.go's bleve.NewMemOnly wrapper,
// reused verbatim in shape (in-memory index, one text field, query-string
// search) but re-pointed at history lines instead of issues.
package histsearch

import (
	"strconv"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
)

// Index is an in-memory, rebuild-per-search bleve index over a set of
// history lines. It is intentionally rebuilt from the live history
// store on every Ctrl-R press rather than incrementally maintained: the
// history store is capped at a few dozen entries (spec.md §3), so a full
// rebuild costs nothing and avoids keeping two copies of history state in
// sync.
type Index struct {
	index bleve.Index
}

type lineDoc struct {
	Line string `json:"line"`
}

// New builds an Index over lines, where lines[i] is addressed by the
// string i (its position in the slice, oldest first — matching
// history.Store.Entries()'s ordering).
func New(lines []string) (*Index, error) {
	m := buildMapping()
	idx, err := bleve.NewMemOnly(m)
	if err != nil {
		return nil, err
	}

	batch := idx.NewBatch()
	for i, line := range lines {
		if err := batch.Index(strconv.Itoa(i), lineDoc{Line: line}); err != nil {
			idx.Close()
			return nil, err
		}
	}
	if err := idx.Batch(batch); err != nil {
		idx.Close()
		return nil, err
	}

	return &Index{index: idx}, nil
}

func buildMapping() mapping.IndexMapping {
	lineField := bleve.NewTextFieldMapping()
	lineField.Analyzer = "standard"

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("line", lineField)

	im := bleve.NewIndexMapping()
	im.DefaultMapping = doc
	im.DefaultAnalyzer = "standard"
	return im
}

// Close releases the index's resources.
func (idx *Index) Close() error {
	return idx.index.Close()
}

// Search returns the indices (into the original lines slice) of history
// lines matching query, most relevant first, up to limit results.
func (idx *Index) Search(query string, limit int) ([]int, error) {
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	q := bleve.NewQueryStringQuery(query)
	req := bleve.NewSearchRequest(q)
	req.Size = limit

	result, err := idx.index.Search(req)
	if err != nil {
		return nil, err
	}

	out := make([]int, 0, len(result.Hits))
	for _, hit := range result.Hits {
		n, err := strconv.Atoi(hit.ID)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}
