package catalog

import (
	"sort"
	"strings"

	"github.com/DRSN-tech/frag-avenue/internal/domain"
)

// SortOrder — порядок выдачи витрины
type SortOrder string

const (
	SortFeatured  SortOrder = "Featured"
	SortPriceLow  SortOrder = "PriceLow"
	SortPriceHigh SortOrder = "PriceHigh"
)

func ParseSortOrder(s string) (SortOrder, bool) {
	switch SortOrder(s) {
	case "", SortFeatured:
		return SortFeatured, true
	case SortPriceLow, SortPriceHigh:
		return SortOrder(s), true
	default:
		return "", false
	}
}

// PriceRange — включительный диапазон цен
type PriceRange struct {
	Min int64
	Max int64
}

// Query — состояние фильтров витрины
type Query struct {
	Text            string
	Category        domain.Category
	PriceMin        int64
	PriceMax        int64
	BestSellersOnly bool
	MinRating       float64
	Sort            SortOrder
}

// DefaultQuery возвращает сброшенные фильтры для каталога с границами цен bounds.
func DefaultQuery(bounds PriceRange) Query {
	return Query{
		Category: domain.CategoryAll,
		PriceMin: bounds.Min,
		PriceMax: bounds.Max,
		Sort:     SortFeatured,
	}
}

// VisibleProducts отбирает продукты, удовлетворяющие всем условиям запроса, и
// при необходимости стабильно сортирует их по цене. Исходный срез не изменяется.
func VisibleProducts(products []domain.Product, q Query) []domain.Product {
	text := strings.ToLower(q.Text)

	res := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matches(p, q, text) {
			res = append(res, p)
		}
	}

	switch q.Sort {
	case SortPriceLow:
		sort.SliceStable(res, func(i, j int) bool { return res[i].Price < res[j].Price })
	case SortPriceHigh:
		sort.SliceStable(res, func(i, j int) bool { return res[i].Price > res[j].Price })
	}

	return res
}

func matches(p domain.Product, q Query, lowerText string) bool {
	if q.Category != domain.CategoryAll && q.Category != "" && p.Category != q.Category {
		return false
	}

	if lowerText != "" &&
		!strings.Contains(strings.ToLower(p.Name), lowerText) &&
		!strings.Contains(strings.ToLower(p.Brand), lowerText) {
		return false
	}

	if q.BestSellersOnly && !p.IsBestSeller {
		return false
	}

	if p.Price < q.PriceMin || p.Price > q.PriceMax {
		return false
	}

	return p.Rating >= q.MinRating
}

// ActiveFilterCount считает включённые фильтры относительно сброшенного состояния.
func ActiveFilterCount(q Query, bounds PriceRange) int {
	count := 0
	if q.Category != domain.CategoryAll && q.Category != "" {
		count++
	}
	if q.Sort != SortFeatured && q.Sort != "" {
		count++
	}
	if q.BestSellersOnly {
		count++
	}
	if q.Text != "" {
		count++
	}
	if q.MinRating > 0 {
		count++
	}
	if q.PriceMin > bounds.Min || q.PriceMax < bounds.Max {
		count++
	}

	return count
}

func priceBounds(products []domain.Product) PriceRange {
	if len(products) == 0 {
		return PriceRange{}
	}

	bounds := PriceRange{Min: products[0].Price, Max: products[0].Price}
	for _, p := range products[1:] {
		bounds.Min = min(bounds.Min, p.Price)
		bounds.Max = max(bounds.Max, p.Price)
	}

	return bounds
}

// PriceBoundsOf возвращает границы цен для произвольного набора продуктов.
func PriceBoundsOf(products []domain.Product) PriceRange {
	return priceBounds(products)
}
