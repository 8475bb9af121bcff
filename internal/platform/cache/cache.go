// Package cache implementa la región read-through que va delante del
// listado de vets. Sin TTL, sin tope de tamaño, sin invalidación por
// escritura: el dato queda stale hasta reinicio de proceso o Evict
// explícito. Eso es aceptable SOLO para datos de referencia casi
// estáticos; no es una policy de caching general.
package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// KeySeparator separa los segmentos de una clave (método + args).
const KeySeparator = "::"

// Key arma una clave estable a partir del método y sus argumentos,
// p.ej. Key("FindPage", 2, 5) => "FindPage::2::5".
func Key(method string, args ...any) string {
	if len(args) == 0 {
		return method
	}
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, method)
	for _, a := range args {
		parts = append(parts, fmt.Sprintf("%v", a))
	}
	return strings.Join(parts, KeySeparator)
}

// FetchFn trae el valor desde la fuente de verdad en un miss.
type FetchFn[T any] func(ctx context.Context) (T, error)

// Region es una región de cache read-through tipada.
type Region[T any] struct {
	mu      sync.RWMutex
	entries map[string]T
}

func NewRegion[T any]() *Region[T] {
	return &Region[T]{entries: make(map[string]T)}
}

// GetOrFetch devuelve el valor cacheado para key, o lo trae con fetch y lo
// deja guardado. Misses concurrentes sobre la misma clave pueden fetchear
// más de una vez (sin protección de stampede): el patrón de acceso es de
// datos de referencia y el query subyacente es barato.
func (r *Region[T]) GetOrFetch(ctx context.Context, key string, fetch FetchFn[T]) (T, error) {
	r.mu.RLock()
	v, ok := r.entries[key]
	r.mu.RUnlock()
	if ok {
		return v, nil
	}

	v, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	r.mu.Lock()
	r.entries[key] = v
	r.mu.Unlock()

	return v, nil
}

// Evict saca una clave puntual (único camino de invalidación además del
// reinicio del proceso).
func (r *Region[T]) Evict(key string) {
	r.mu.Lock()
	delete(r.entries, key)
	r.mu.Unlock()
}

// Clear vacía la región completa.
func (r *Region[T]) Clear() {
	r.mu.Lock()
	r.entries = make(map[string]T)
	r.mu.Unlock()
}

// Len devuelve la cantidad de entradas vivas (para tests).
func (r *Region[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
