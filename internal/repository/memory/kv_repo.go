package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
)

// KVRepo — key-value хранилище в памяти процесса. Состояние теряется при перезапуске.
type KVRepo struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewKVRepo() *KVRepo {
	return &KVRepo{data: make(map[string][]byte)}
}

func (r *KVRepo) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}

	return slices.Clone(v), nil
}

func (r *KVRepo) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = slices.Clone(value)
	return nil
}

func (r *KVRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, key)
	return nil
}

// Keys возвращает отсортированные ключи с указанным префиксом.
func (r *KVRepo) Keys(prefix string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0)
	for k := range r.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	return keys
}

func (r *KVRepo) Close(_ context.Context) error { return nil }
