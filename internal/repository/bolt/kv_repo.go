// Package bolt реализует файловое key-value хранилище сессий поверх bbolt.
package bolt

import (
	"context"
	"os"
	"path/filepath"
	"slices"

	"github.com/DRSN-tech/frag-avenue/internal/cfg"
	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/jimlawless/whereami"
	bolt "go.etcd.io/bbolt"
)

// KVRepo хранит все ключи в одном бакете.
type KVRepo struct {
	db     *bolt.DB
	bucket []byte
}

// Open открывает (или создаёт) файл базы и бакет.
func Open(cfg *cfg.BoltCfg) (*KVRepo, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	db, err := bolt.Open(cfg.Path, 0o600, &bolt.Options{Timeout: cfg.OpenTimeout})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	bucket := []byte(cfg.Bucket)
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &KVRepo{db: db, bucket: bucket}, nil
}

// Get возвращает копию значения: срез bbolt действителен только внутри транзакции.
func (k *KVRepo) Get(_ context.Context, key string) ([]byte, error) {
	var value []byte
	err := k.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(k.bucket).Get([]byte(key)); v != nil {
			value = slices.Clone(v)
		}
		return nil
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return value, nil
}

func (k *KVRepo) Set(_ context.Context, key string, value []byte) error {
	err := k.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(k.bucket).Put([]byte(key), value)
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (k *KVRepo) Delete(_ context.Context, key string) error {
	err := k.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(k.bucket).Delete([]byte(key))
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (k *KVRepo) Close(_ context.Context) error {
	if err := k.db.Close(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
