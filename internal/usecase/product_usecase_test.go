package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/DRSN-tech/frag-avenue/internal/catalog"
	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func productIDs(products []domain.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()
	uc := NewProductUC(testCatalog(t), nil, logger.NewNopLogger())

	t.Run("defaults return the whole catalog in featured order", func(t *testing.T) {
		res, err := uc.ListProducts(ctx, &ListProductsReq{})
		require.NoError(t, err)

		assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, productIDs(res.Products))
		assert.Equal(t, catalog.PriceRange{Min: 28000, Max: 45500}, res.Bounds)
		assert.Equal(t, 0, res.ActiveFilters)
		assert.Equal(t, domain.CategoryAll, res.Query.Category)
	})

	t.Run("filters combine and are counted", func(t *testing.T) {
		res, err := uc.ListProducts(ctx, &ListProductsReq{
			Category: domain.CategoryUnisex,
			PriceMax: ptr(int64(40000)),
			Sort:     catalog.SortPriceHigh,
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"p3"}, productIDs(res.Products))
		assert.Equal(t, 3, res.ActiveFilters)
	})

	t.Run("text matches brand case-insensitively", func(t *testing.T) {
		res, err := uc.ListProducts(ctx, &ListProductsReq{Text: "  mfk "})
		require.NoError(t, err)

		assert.Equal(t, []string{"p1", "p2"}, productIDs(res.Products))
		assert.Equal(t, "mfk", res.Query.Text)
	})

	t.Run("price low sort", func(t *testing.T) {
		res, err := uc.ListProducts(ctx, &ListProductsReq{Sort: catalog.SortPriceLow})
		require.NoError(t, err)

		assert.Equal(t, []string{"p3", "p2", "p4", "p1"}, productIDs(res.Products))
	})

	invalid := []struct {
		name string
		req  *ListProductsReq
		err  error
	}{
		{"unknown category", &ListProductsReq{Category: "Kids"}, e.ErrInvalidCategory},
		{"unknown sort", &ListProductsReq{Sort: "Newest"}, e.ErrInvalidSort},
		{"rating above five", &ListProductsReq{MinRating: 5.5}, e.ErrInvalidRating},
		{"negative rating", &ListProductsReq{MinRating: -1}, e.ErrInvalidRating},
		{"negative price", &ListProductsReq{PriceMin: ptr(int64(-1))}, e.ErrInvalidPrice},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.ListProducts(ctx, tt.req)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestGetProduct(t *testing.T) {
	ctx := context.Background()
	uc := NewProductUC(testCatalog(t), nil, logger.NewNopLogger())

	res, err := uc.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Baccarat Rouge 540", res.Product.Name)
	assert.NotContains(t, productIDs(res.Related), "p1")
	assert.LessOrEqual(t, len(res.Related), catalog.DefaultRelatedLimit)

	_, err = uc.GetProduct(ctx, "missing")
	assert.ErrorIs(t, err, e.ErrProductNotFound)

	related, err := uc.RelatedProducts(ctx, "p2", 1)
	require.NoError(t, err)
	assert.Len(t, related, 1)
}

func TestHome(t *testing.T) {
	uc := NewProductUC(testCatalog(t), nil, logger.NewNopLogger())

	res := uc.Home(context.Background())
	assert.Equal(t, []string{"p1", "p2"}, productIDs(res.BestSellers))
	assert.Equal(t, []string{"p3", "p4"}, productIDs(res.NewArrivals))
}

func TestReviewsCarouselWraps(t *testing.T) {
	uc := NewProductUC(testCatalog(t), nil, logger.NewNopLogger())
	ctx := context.Background()

	tests := []struct {
		index, current, next int
	}{
		{0, 0, 1},
		{2, 2, 0},
		{3, 0, 1},
		{-1, 2, 0},
	}
	for _, tt := range tests {
		res := uc.Reviews(ctx, tt.index)
		assert.Len(t, res.Reviews, 3)
		assert.Equal(t, tt.current, res.Current, "index %d", tt.index)
		assert.Equal(t, tt.next, res.Next, "index %d", tt.index)
	}
}

func TestImageURL(t *testing.T) {
	ctx := context.Background()

	t.Run("absolute url passes through", func(t *testing.T) {
		uc := NewProductUC(testCatalog(t), nil, logger.NewNopLogger())

		u, err := uc.ImageURL(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "https://images.example.com/p1.jpg", u)
	})

	t.Run("object key without storage", func(t *testing.T) {
		uc := NewProductUC(testCatalog(t), nil, logger.NewNopLogger())

		_, err := uc.ImageURL(ctx, "p2")
		assert.ErrorIs(t, err, e.ErrImageNotConfigured)
	})

	t.Run("object key is presigned", func(t *testing.T) {
		uc := NewProductUC(testCatalog(t), &fakeImages{url: "http://minio/"}, logger.NewNopLogger())

		u, err := uc.ImageURL(ctx, "p2")
		require.NoError(t, err)
		assert.Equal(t, "http://minio/products/p2.jpg", u)
	})

	t.Run("empty reference", func(t *testing.T) {
		uc := NewProductUC(testCatalog(t), &fakeImages{url: "http://minio/"}, logger.NewNopLogger())

		_, err := uc.ImageURL(ctx, "p3")
		assert.ErrorIs(t, err, e.ErrImageNotConfigured)
	})

	t.Run("storage failure", func(t *testing.T) {
		boom := errors.New("boom")
		uc := NewProductUC(testCatalog(t), &fakeImages{err: boom}, logger.NewNopLogger())

		_, err := uc.ImageURL(ctx, "p2")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("unknown product", func(t *testing.T) {
		uc := NewProductUC(testCatalog(t), nil, logger.NewNopLogger())

		_, err := uc.ImageURL(ctx, "missing")
		assert.ErrorIs(t, err, e.ErrProductNotFound)
	})
}
