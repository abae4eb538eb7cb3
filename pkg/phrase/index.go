package phrase

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/blevesearch/vellum"
)

// rootIndex maps normalized first words to arena handles through an
// in-memory FST. The FST is immutable once loaded, so lookups need no locking.
type rootIndex struct {
	fst *vellum.FST
}

// buildRootIndex compiles roots into an FST. vellum requires keys in
// lexicographic order.
func buildRootIndex(roots map[string]NodeID) (*rootIndex, error) {
	if len(roots) == 0 {
		return &rootIndex{}, nil
	}

	keys := make([]string, 0, len(roots))
	for k := range roots {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, fmt.Errorf("create root index builder: %w", err)
	}
	for _, k := range keys {
		if err := builder.Insert([]byte(k), uint64(roots[k])); err != nil {
			builder.Close()
			return nil, fmt.Errorf("insert root %q: %w", k, err)
		}
	}
	if err := builder.Close(); err != nil {
		return nil, fmt.Errorf("close root index builder: %w", err)
	}

	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("load root index: %w", err)
	}
	return &rootIndex{fst: fst}, nil
}

func (r *rootIndex) get(word string) (NodeID, bool) {
	if r.fst == nil {
		return 0, false
	}
	v, ok, err := r.fst.Get([]byte(word))
	if err != nil || !ok {
		return 0, false
	}
	return NodeID(v), true
}

func (r *rootIndex) count() int {
	if r.fst == nil {
		return 0
	}
	return r.fst.Len()
}
