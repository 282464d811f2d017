package store

import (
	"context"

	"github.com/DRSN-tech/frag-avenue/internal/domain"
)

// Ключи снимков состояния в key-value хранилище.
const (
	CartKey     = "frag_ave_cart"
	WishlistKey = "frag_ave_wishlist"
	UserKey     = "frag_ave_user"
	OrdersKey   = "frag_ave_orders"
)

// Storage — key-value хранилище, в которое зеркалируется состояние Store.
// Get возвращает nil без ошибки, если ключ отсутствует.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// ProductCatalog — источник актуальных данных о продуктах.
type ProductCatalog interface {
	Product(id string) (domain.Product, bool)
	Price(id string) (int64, bool)
}

// Scoped возвращает хранилище, у которого все ключи получают префикс "<scope>:".
func Scoped(s Storage, scope string) Storage {
	return &scopedStorage{inner: s, prefix: scope + ":"}
}

type scopedStorage struct {
	inner  Storage
	prefix string
}

func (s *scopedStorage) Get(ctx context.Context, key string) ([]byte, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *scopedStorage) Set(ctx context.Context, key string, value []byte) error {
	return s.inner.Set(ctx, s.prefix+key, value)
}

func (s *scopedStorage) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}
