// Package registry keeps named sort engines in a concurrent ordered map so
// that listings come out sorted without extra work.
package registry

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/zhangyunhao116/skipmap"

	"algotrace/pkg/sorting"
	"algotrace/pkg/traceerrors"
)

// Registry maps algorithm names to engines. Safe for concurrent use.
type Registry[T any] struct {
	engines *skipmap.FuncMap[string, sorting.Engine[T]]
}

// New returns an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{
		engines: skipmap.NewFunc[string, sorting.Engine[T]](func(a, b string) bool {
			return a < b
		}),
	}
}

// Default returns a registry holding the four built-in engines.
func Default[T cmp.Ordered]() *Registry[T] {
	r := New[T]()
	for name, e := range sorting.Engines[T]() {
		r.Register(name, e)
	}
	return r
}

// Register adds or replaces an engine. Names are case-insensitive.
func (r *Registry[T]) Register(name string, e sorting.Engine[T]) {
	r.engines.Store(normalize(name), e)
}

// Lookup finds an engine by case-insensitive name. Unknown names fail with
// traceerrors.ErrUnknownAlgorithm.
func (r *Registry[T]) Lookup(name string) (sorting.Engine[T], error) {
	e, ok := r.engines.Load(normalize(name))
	if !ok {
		return nil, fmt.Errorf("%w: %q", traceerrors.ErrUnknownAlgorithm, name)
	}
	return e, nil
}

// Names returns registered names in ascending order.
func (r *Registry[T]) Names() []string {
	names := make([]string, 0, r.engines.Len())
	r.engines.Range(func(name string, _ sorting.Engine[T]) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Len is the number of registered engines.
func (r *Registry[T]) Len() int {
	return r.engines.Len()
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
