package catalog

import (
	"testing"

	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id, name, brand string, category domain.Category, price int64) domain.Product {
	return domain.Product{ID: id, Name: name, Brand: brand, Category: category, Price: price, Rating: 4}
}

func ids(products []domain.Product) []string {
	res := make([]string, len(products))
	for i, p := range products {
		res[i] = p.ID
	}
	return res
}

func TestVisibleProductsConjunction(t *testing.T) {
	products := []domain.Product{
		product("A", "Santal Noir", "House", domain.CategoryWomen, 30000),
		product("B", "Santal Gold", "House", domain.CategoryMen, 30000),
		product("C", "Oud Rose", "House", domain.CategoryWomen, 30000),
	}

	q := Query{
		Text:     "santal",
		Category: domain.CategoryWomen,
		PriceMin: 20000,
		PriceMax: 50000,
		Sort:     SortFeatured,
	}

	assert.Equal(t, []string{"A"}, ids(VisibleProducts(products, q)))
}

func TestVisibleProductsPredicates(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Name: "Aventus", Brand: "Creed", Category: domain.CategoryMen, Price: 42000, Rating: 4.8, IsBestSeller: true},
		{ID: "2", Name: "Delina", Brand: "Parfums de Marly", Category: domain.CategoryWomen, Price: 33000, Rating: 4.6, IsBestSeller: true},
		{ID: "3", Name: "Gypsy Water", Brand: "Byredo", Category: domain.CategoryUnisex, Price: 27000, Rating: 4.2},
	}
	all := DefaultQuery(PriceBoundsOf(products))

	t.Run("default query keeps everything", func(t *testing.T) {
		assert.Equal(t, []string{"1", "2", "3"}, ids(VisibleProducts(products, all)))
	})

	t.Run("text matches brand case-insensitively", func(t *testing.T) {
		q := all
		q.Text = "CREED"
		assert.Equal(t, []string{"1"}, ids(VisibleProducts(products, q)))
	})

	t.Run("best sellers only", func(t *testing.T) {
		q := all
		q.BestSellersOnly = true
		assert.Equal(t, []string{"1", "2"}, ids(VisibleProducts(products, q)))
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		q := all
		q.PriceMin = 27000
		q.PriceMax = 33000
		assert.Equal(t, []string{"2", "3"}, ids(VisibleProducts(products, q)))
	})

	t.Run("min rating", func(t *testing.T) {
		q := all
		q.MinRating = 4.6
		assert.Equal(t, []string{"1", "2"}, ids(VisibleProducts(products, q)))
	})

	t.Run("no match returns empty non-nil slice", func(t *testing.T) {
		q := all
		q.Text = "nothing like this"
		res := VisibleProducts(products, q)
		require.NotNil(t, res)
		assert.Empty(t, res)
	})
}

func TestVisibleProductsSortStable(t *testing.T) {
	products := []domain.Product{
		product("a", "One", "X", domain.CategoryMen, 300),
		product("b", "Two", "X", domain.CategoryMen, 100),
		product("c", "Three", "X", domain.CategoryMen, 300),
		product("d", "Four", "X", domain.CategoryMen, 100),
	}
	q := DefaultQuery(PriceBoundsOf(products))

	q.Sort = SortPriceLow
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(VisibleProducts(products, q)))

	q.Sort = SortPriceHigh
	assert.Equal(t, []string{"a", "c", "b", "d"}, ids(VisibleProducts(products, q)))

	q.Sort = SortFeatured
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(VisibleProducts(products, q)))

	// исходный порядок не изменился
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(products))
}

func TestActiveFilterCount(t *testing.T) {
	bounds := PriceRange{Min: 100, Max: 500}
	q := DefaultQuery(bounds)
	assert.Equal(t, 0, ActiveFilterCount(q, bounds))

	q.Category = domain.CategoryMen
	q.Sort = SortPriceHigh
	q.BestSellersOnly = true
	q.Text = "oud"
	q.MinRating = 4
	q.PriceMax = 400
	assert.Equal(t, 6, ActiveFilterCount(q, bounds))

	q = DefaultQuery(bounds)
	q.PriceMin = 150
	q.PriceMax = 450
	assert.Equal(t, 1, ActiveFilterCount(q, bounds), "narrowing both ends counts once")
}

func TestParseSortOrder(t *testing.T) {
	s, ok := ParseSortOrder("")
	require.True(t, ok)
	assert.Equal(t, SortFeatured, s)

	_, ok = ParseSortOrder("Random")
	assert.False(t, ok)
}
