package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/frag-avenue/internal/catalog"
	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
)

// newArrivalsOnHome — сколько новинок показывает главная страница
const newArrivalsOnHome = 5

// ProductUseCase реализует просмотр каталога: витрину с фильтрами, карточку товара,
// главную страницу, отзывы и ссылки на изображения.
type ProductUseCase struct {
	catalog *catalog.Catalog
	images  ImagesInfra // nil, если MinIO не настроен
	logger  logger.Logger
}

func NewProductUC(catalog *catalog.Catalog, images ImagesInfra, logger logger.Logger) *ProductUseCase {
	return &ProductUseCase{
		catalog: catalog,
		images:  images,
		logger:  logger,
	}
}

// ListProducts применяет фильтры к каталогу и считает активные фильтры.
func (p *ProductUseCase) ListProducts(_ context.Context, req *ListProductsReq) (*ListProductsRes, error) {
	const op = "ProductUseCase.ListProducts"

	if err := p.validateListReq(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	bounds := p.catalog.PriceBounds()
	q := catalog.DefaultQuery(bounds)
	q.Text = strings.TrimSpace(req.Text)
	q.BestSellersOnly = req.BestSellersOnly
	q.MinRating = req.MinRating
	if req.Category != "" {
		q.Category = req.Category
	}
	if req.Sort != "" {
		q.Sort = req.Sort
	}
	if req.PriceMin != nil {
		q.PriceMin = *req.PriceMin
	}
	if req.PriceMax != nil {
		q.PriceMax = *req.PriceMax
	}

	products := catalog.VisibleProducts(p.catalog.Products(), q)

	return NewListProductsRes(products, q, bounds, catalog.ActiveFilterCount(q, bounds)), nil
}

// GetProduct возвращает товар и похожие ароматы.
func (p *ProductUseCase) GetProduct(ctx context.Context, id string) (*ProductDetailRes, error) {
	const op = "ProductUseCase.GetProduct"

	product, ok := p.catalog.Product(id)
	if !ok {
		return nil, e.Wrap(op+": "+id, e.ErrProductNotFound)
	}

	related := catalog.RelatedProducts(p.catalog.Products(), product, catalog.DefaultRelatedLimit)
	return NewProductDetailRes(product, related), nil
}

// RelatedProducts возвращает до limit похожих ароматов; при limit <= 0 берётся значение по умолчанию.
func (p *ProductUseCase) RelatedProducts(_ context.Context, id string, limit int) ([]domain.Product, error) {
	const op = "ProductUseCase.RelatedProducts"

	product, ok := p.catalog.Product(id)
	if !ok {
		return nil, e.Wrap(op+": "+id, e.ErrProductNotFound)
	}
	if limit <= 0 {
		limit = catalog.DefaultRelatedLimit
	}

	return catalog.RelatedProducts(p.catalog.Products(), product, limit), nil
}

// Home собирает бестселлеры и первые новинки.
func (p *ProductUseCase) Home(_ context.Context) *HomeRes {
	return NewHomeRes(p.catalog.BestSellers(), p.catalog.NewArrivals(newArrivalsOnHome))
}

// Reviews возвращает отзывы и следующий слайд карусели после index.
func (p *ProductUseCase) Reviews(_ context.Context, index int) *ReviewsRes {
	reviews := p.catalog.Reviews()
	n := len(reviews)
	if n == 0 {
		return NewReviewsRes(reviews, 0, 0)
	}

	current := ((index % n) + n) % n
	return NewReviewsRes(reviews, current, (current+1)%n)
}

// ImageURL отдаёт абсолютные ссылки как есть, ключи объектов подписывает через MinIO.
func (p *ProductUseCase) ImageURL(ctx context.Context, id string) (string, error) {
	const op = "ProductUseCase.ImageURL"

	product, ok := p.catalog.Product(id)
	if !ok {
		return "", e.Wrap(op+": "+id, e.ErrProductNotFound)
	}

	ref := product.ImageRef
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, nil
	}
	if ref == "" || p.images == nil {
		return "", e.Wrap(op+": "+id, e.ErrImageNotConfigured)
	}

	u, err := p.images.ImageURL(ctx, ref)
	if err != nil {
		p.logger.Errorf(err, "failed to resolve image for product %s", id)
		return "", e.Wrap(op, err)
	}

	return u, nil
}

func (p *ProductUseCase) validateListReq(req *ListProductsReq) error {
	if req.Category != "" {
		if _, ok := domain.ParseCategory(string(req.Category)); !ok {
			return e.ErrInvalidCategory
		}
	}

	if req.Sort != "" {
		if _, ok := catalog.ParseSortOrder(string(req.Sort)); !ok {
			return e.ErrInvalidSort
		}
	}

	if req.MinRating < 0 || req.MinRating > 5 {
		return e.ErrInvalidRating
	}

	if req.PriceMin != nil && *req.PriceMin < 0 || req.PriceMax != nil && *req.PriceMax < 0 {
		return e.ErrInvalidPrice
	}

	return nil
}
