package inventory

import (
	"sort"
	"sync"
)

// KeyedLock exclusión mutua por clave (ID de producto, prefijo de código).
// Las escrituras sobre claves distintas no se bloquean entre sí.
type KeyedLock struct {
	mu    sync.Mutex
	locks map[string]*keyEntry
}

type keyEntry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedLock crea un KeyedLock vacío.
func NewKeyedLock() *KeyedLock {
	return &KeyedLock{locks: make(map[string]*keyEntry)}
}

// Lock toma todas las claves (sin repetidos, en orden para evitar interbloqueos) y devuelve
// la función que las libera.
func (k *KeyedLock) Lock(keys ...string) (unlock func()) {
	keys = normalizeKeys(keys)
	entries := make([]*keyEntry, len(keys))

	k.mu.Lock()
	for i, key := range keys {
		e, ok := k.locks[key]
		if !ok {
			e = &keyEntry{}
			k.locks[key] = e
		}
		e.refs++
		entries[i] = e
	}
	k.mu.Unlock()

	for _, e := range entries {
		e.mu.Lock()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for i := len(entries) - 1; i >= 0; i-- {
				entries[i].mu.Unlock()
			}
			k.mu.Lock()
			for i, key := range keys {
				entries[i].refs--
				if entries[i].refs == 0 {
					delete(k.locks, key)
				}
			}
			k.mu.Unlock()
		})
	}
}

func normalizeKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// ProductKey clave de exclusión para el stock de un producto.
func ProductKey(productID string) string { return "product:" + productID }

// CodeKey clave de exclusión para la generación de códigos de un prefijo.
func CodeKey(prefix string) string { return "code:" + prefix }
