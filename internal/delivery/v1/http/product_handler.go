package http

import (
	"net/http"

	"github.com/DRSN-tech/frag-avenue/internal/catalog"
	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/internal/usecase"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Витрина магазина
//	@Description	Фильтрует каталог по тексту, категории, цене, рейтингу и сортирует результат
//	@Tags			products
//	@Produce		json
//	@Param			q			query		string	false	"Поиск по названию и бренду"
//	@Param			category	query		string	false	"All, Men, Women, Unisex"
//	@Param			minPrice	query		number	false	"Минимальная цена"
//	@Param			maxPrice	query		number	false	"Максимальная цена"
//	@Param			bestSellers	query		bool	false	"Только бестселлеры"
//	@Param			minRating	query		number	false	"Минимальный рейтинг"
//	@Param			sort		query		string	false	"Featured, PriceLow, PriceHigh"
//	@Success		200			{object}	listProductsResponse
//	@Failure		400			{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	req, err := parseListProductsReq(r)
	if err != nil {
		fail(p.logger, w, r, err)
		return
	}

	res, err := p.productUsecase.ListProducts(r.Context(), req)
	if err != nil {
		fail(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toListProductsResponse(res))
}

// getProduct
//
//	@Summary		Карточка товара
//	@Tags			products
//	@Produce		json
//	@Param			id	path		string	true	"ID товара"
//	@Success		200	{object}	productDetailResponse
//	@Failure		404	{object}	ErrorResponse	"Товар не найден"
//	@Router			/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	res, err := p.productUsecase.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, productDetailResponse{
		Product: toProductDTO(res.Product),
		Related: toProductDTOs(res.Related),
	})
}

// relatedProducts
//
//	@Summary	Похожие ароматы
//	@Tags		products
//	@Produce	json
//	@Param		id		path		string	true	"ID товара"
//	@Param		limit	query		int		false	"Количество, по умолчанию 6"
//	@Success	200		{array}		productDTO
//	@Failure	404		{object}	ErrorResponse	"Товар не найден"
//	@Router		/products/{id}/related [get]
func (p *ProductHandler) relatedProducts(w http.ResponseWriter, r *http.Request) {
	limit, err := parseInt(r.URL.Query().Get("limit"), catalog.DefaultRelatedLimit)
	if err != nil {
		fail(p.logger, w, r, err)
		return
	}

	related, err := p.productUsecase.RelatedProducts(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		fail(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductDTOs(related))
}

// productImage
//
//	@Summary		Ссылка на изображение товара
//	@Description	Абсолютные ссылки возвращаются как есть, ключи объектов подписываются в MinIO
//	@Tags			products
//	@Produce		json
//	@Param			id	path		string	true	"ID товара"
//	@Success		200	{object}	imageResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id}/image [get]
func (p *ProductHandler) productImage(w http.ResponseWriter, r *http.Request) {
	url, err := p.productUsecase.ImageURL(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, imageResponse{URL: url})
}

// home
//
//	@Summary	Главная страница
//	@Tags		products
//	@Produce	json
//	@Success	200	{object}	homeResponse
//	@Router		/home [get]
func (p *ProductHandler) home(w http.ResponseWriter, r *http.Request) {
	res := p.productUsecase.Home(r.Context())

	WriteSuccess(w, http.StatusOK, homeResponse{
		BestSellers: toProductDTOs(res.BestSellers),
		NewArrivals: toProductDTOs(res.NewArrivals),
	})
}

// reviews
//
//	@Summary	Отзывы покупателей
//	@Tags		products
//	@Produce	json
//	@Param		index	query		int	false	"Текущий слайд карусели"
//	@Success	200		{object}	reviewsResponse
//	@Router		/reviews [get]
func (p *ProductHandler) reviews(w http.ResponseWriter, r *http.Request) {
	index, err := parseInt(r.URL.Query().Get("index"), 0)
	if err != nil {
		fail(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toReviewsResponse(p.productUsecase.Reviews(r.Context(), index)))
}

func parseListProductsReq(r *http.Request) (*usecase.ListProductsReq, error) {
	q := r.URL.Query()

	priceMin, err := optionalPrice(r, "minPrice")
	if err != nil {
		return nil, err
	}
	priceMax, err := optionalPrice(r, "maxPrice")
	if err != nil {
		return nil, err
	}
	bestSellers, err := parseBool(q.Get("bestSellers"))
	if err != nil {
		return nil, err
	}
	minRating, err := parseRating(q.Get("minRating"))
	if err != nil {
		return nil, err
	}

	return &usecase.ListProductsReq{
		Text:            q.Get("q"),
		Category:        domain.Category(q.Get("category")),
		PriceMin:        priceMin,
		PriceMax:        priceMax,
		BestSellersOnly: bestSellers,
		MinRating:       minRating,
		Sort:            catalog.SortOrder(q.Get("sort")),
	}, nil
}
