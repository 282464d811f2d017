package http

import (
	"net/http"

	"github.com/DRSN-tech/frag-avenue/internal/usecase"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// SessionHandler обслуживает корзину, избранное и навигацию текущей сессии.
type SessionHandler struct {
	sessionUsecase usecase.SessionUC
	logger         logger.Logger
}

func NewSessionHandler(sessionUsecase usecase.SessionUC, logger logger.Logger) *SessionHandler {
	return &SessionHandler{sessionUsecase: sessionUsecase, logger: logger}
}

// getCart
//
//	@Summary	Состояние корзины и сессии
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	sessionResponse
//	@Router		/cart [get]
func (s *SessionHandler) getCart(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toSessionResponse(s.sessionUsecase.State(r.Context(), sessionID(r))))
}

// addToCart
//
//	@Summary		Добавление в корзину
//	@Description	Позиция с тем же товаром и объёмом объединяется. Пустой объём означает 50ml
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			body	body		addToCartRequest	true	"Товар, объём и количество"
//	@Success		200		{object}	sessionResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Router			/cart/items [post]
func (s *SessionHandler) addToCart(w http.ResponseWriter, r *http.Request) {
	var body addToCartRequest
	if err := decodeJSON(w, r, &body, false); err != nil {
		fail(s.logger, w, r, err)
		return
	}

	res, err := s.sessionUsecase.AddToCart(r.Context(), sessionID(r), usecase.NewAddToCartReq(body.ProductID, body.Size, body.Quantity))
	if err != nil {
		fail(s.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toSessionResponse(res))
}

// updateCartItem
//
//	@Summary	Изменение количества
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"ID позиции корзины"
//	@Param		body	body		updateQuantityRequest	true	"Новое количество, не меньше 1"
//	@Success	200		{object}	sessionResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/cart/items/{id} [patch]
func (s *SessionHandler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var body updateQuantityRequest
	if err := decodeJSON(w, r, &body, false); err != nil {
		fail(s.logger, w, r, err)
		return
	}

	res, err := s.sessionUsecase.UpdateCartQuantity(r.Context(), sessionID(r), chi.URLParam(r, "id"), body.Quantity)
	if err != nil {
		fail(s.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toSessionResponse(res))
}

// removeCartItem
//
//	@Summary	Удаление позиции
//	@Tags		cart
//	@Produce	json
//	@Param		id	path		string	true	"ID позиции корзины"
//	@Success	200	{object}	sessionResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/cart/items/{id} [delete]
func (s *SessionHandler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	res, err := s.sessionUsecase.RemoveFromCart(r.Context(), sessionID(r), chi.URLParam(r, "id"))
	if err != nil {
		fail(s.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toSessionResponse(res))
}

// clearCart
//
//	@Summary	Очистка корзины
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	sessionResponse
//	@Router		/cart [delete]
func (s *SessionHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toSessionResponse(s.sessionUsecase.ClearCart(r.Context(), sessionID(r))))
}

// setCartPanel
//
//	@Summary	Открытие и закрытие панели корзины
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Param		body	body		cartPanelRequest	true	"Состояние панели"
//	@Success	200		{object}	sessionResponse
//	@Router		/cart/panel [put]
func (s *SessionHandler) setCartPanel(w http.ResponseWriter, r *http.Request) {
	var body cartPanelRequest
	if err := decodeJSON(w, r, &body, false); err != nil {
		fail(s.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toSessionResponse(s.sessionUsecase.SetCartPanel(r.Context(), sessionID(r), body.Open)))
}

// getWishlist
//
//	@Summary	Избранное
//	@Tags		wishlist
//	@Produce	json
//	@Success	200	{array}	productDTO
//	@Router		/wishlist [get]
func (s *SessionHandler) getWishlist(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toProductDTOs(s.sessionUsecase.Wishlist(r.Context(), sessionID(r))))
}

// toggleWishlist
//
//	@Summary	Переключение товара в избранном
//	@Tags		wishlist
//	@Produce	json
//	@Param		productId	path		string	true	"ID товара"
//	@Success	200			{object}	wishlistToggleResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/wishlist/{productId} [post]
func (s *SessionHandler) toggleWishlist(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	on, err := s.sessionUsecase.ToggleWishlist(r.Context(), sessionID(r), productID)
	if err != nil {
		fail(s.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, wishlistToggleResponse{ProductID: productID, Wishlisted: on})
}

// getNavigation
//
//	@Summary	Текущая страница
//	@Tags		navigation
//	@Produce	json
//	@Success	200	{object}	navigationDTO
//	@Router		/navigation [get]
func (s *SessionHandler) getNavigation(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toNavigationDTO(s.sessionUsecase.Navigation(r.Context(), sessionID(r))))
}

// navigate
//
//	@Summary		Переход на страницу
//	@Description	Переход отменяет незавершённые операции предыдущей страницы. Поддерживает product-<id> и wishlist
//	@Tags			navigation
//	@Accept			json
//	@Produce		json
//	@Param			body	body		navigateRequest	true	"Страница и подсказка категории"
//	@Success		200		{object}	navigationDTO
//	@Router			/navigation [post]
func (s *SessionHandler) navigate(w http.ResponseWriter, r *http.Request) {
	var body navigateRequest
	if err := decodeJSON(w, r, &body, false); err != nil {
		fail(s.logger, w, r, err)
		return
	}

	st := s.sessionUsecase.Navigate(r.Context(), sessionID(r), usecase.NewNavigateReq(body.View, body.Category))
	WriteSuccess(w, http.StatusOK, toNavigationDTO(st))
}
