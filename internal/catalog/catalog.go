// Package catalog хранит каталог ароматов и реализует чистые функции
// фильтрации, сортировки и подбора похожих товаров.
package catalog

import (
	"sync"

	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/pkg/e"
)

// Catalog — потокобезопасный контейнер каталога. Порядок продуктов задаётся источником
// данных и считается порядком "Featured".
type Catalog struct {
	mu       sync.RWMutex
	products []domain.Product
	index    map[string]int
	reviews  []domain.Review
}

// New проверяет продукты и создаёт каталог.
func New(products []domain.Product, reviews []domain.Review) (*Catalog, error) {
	c := &Catalog{}
	if err := c.Replace(products, reviews); err != nil {
		return nil, err
	}

	return c, nil
}

// Replace атомарно заменяет содержимое каталога.
func (c *Catalog) Replace(products []domain.Product, reviews []domain.Review) error {
	const op = "Catalog.Replace"

	if len(products) == 0 {
		return e.Wrap(op, e.ErrEmptyCatalog)
	}

	index := make(map[string]int, len(products))
	cloned := make([]domain.Product, len(products))
	for i, p := range products {
		if _, ok := index[p.ID]; ok {
			return e.Wrap(op+": "+p.ID, e.ErrDuplicateProductID)
		}
		if p.Price <= 0 {
			return e.Wrap(op+": "+p.ID, e.ErrPriceMustBePositive)
		}

		index[p.ID] = i
		cloned[i] = p.Clone()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = cloned
	c.index = index
	c.reviews = append([]domain.Review{}, reviews...)

	return nil
}

// Products возвращает копию всех продуктов в порядке каталога.
func (c *Catalog) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res := make([]domain.Product, len(c.products))
	for i, p := range c.products {
		res[i] = p.Clone()
	}

	return res
}

// Product ищет продукт по идентификатору.
func (c *Catalog) Product(id string) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		return domain.Product{}, false
	}

	return c.products[i].Clone(), true
}

// Price возвращает текущую цену продукта.
func (c *Catalog) Price(id string) (int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		return 0, false
	}

	return c.products[i].Price, true
}

// SetPrice меняет цену продукта. Корзины увидят новую цену при следующем чтении итога.
func (c *Catalog) SetPrice(id string, price int64) error {
	const op = "Catalog.SetPrice"

	if price <= 0 {
		return e.Wrap(op, e.ErrPriceMustBePositive)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return e.Wrap(op+": "+id, e.ErrProductNotFound)
	}
	c.products[i].Price = price

	return nil
}

// PriceBounds возвращает минимальную и максимальную цену каталога.
func (c *Catalog) PriceBounds() PriceRange {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return priceBounds(c.products)
}

// BestSellers возвращает бестселлеры в порядке каталога.
func (c *Catalog) BestSellers() []domain.Product {
	return c.collect(func(p domain.Product) bool { return p.IsBestSeller }, 0)
}

// NewArrivals возвращает первые limit новинок (при limit <= 0 все).
func (c *Catalog) NewArrivals(limit int) []domain.Product {
	return c.collect(func(p domain.Product) bool { return p.IsNew }, limit)
}

// ByIDs возвращает продукты из списка ids в порядке каталога, неизвестные id пропускаются.
func (c *Catalog) ByIDs(ids []string) []domain.Product {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return c.collect(func(p domain.Product) bool {
		_, ok := set[p.ID]
		return ok
	}, 0)
}

// Reviews возвращает отзывы в исходном порядке.
func (c *Catalog) Reviews() []domain.Review {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]domain.Review{}, c.reviews...)
}

func (c *Catalog) collect(keep func(domain.Product) bool, limit int) []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res := make([]domain.Product, 0)
	for _, p := range c.products {
		if limit > 0 && len(res) == limit {
			break
		}
		if keep(p) {
			res = append(res, p.Clone())
		}
	}

	return res
}
