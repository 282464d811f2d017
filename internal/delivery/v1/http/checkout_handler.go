package http

import (
	"net/http"

	"github.com/DRSN-tech/frag-avenue/internal/usecase"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// CheckoutHandler — оформление заказа и история заказов.
type CheckoutHandler struct {
	checkoutUsecase usecase.CheckoutUC
	orderUsecase    usecase.OrderUC
	logger          logger.Logger
}

func NewCheckoutHandler(checkoutUsecase usecase.CheckoutUC, orderUsecase usecase.OrderUC, logger logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUsecase: checkoutUsecase,
		orderUsecase:    orderUsecase,
		logger:          logger,
	}
}

// getCheckout
//
//	@Summary		Состояние оформления
//	@Description	Пока заказ обрабатывается, processing = true
//	@Tags			checkout
//	@Produce		json
//	@Success		200	{object}	checkoutResponse
//	@Router			/checkout [get]
func (c *CheckoutHandler) getCheckout(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toCheckoutResponse(c.checkoutUsecase.State(r.Context(), sessionID(r))))
}

// startCheckout
//
//	@Summary	Начало оформления
//	@Tags		checkout
//	@Produce	json
//	@Success	200	{object}	checkoutResponse
//	@Failure	409	{object}	ErrorResponse	"Корзина пуста"
//	@Router		/checkout/start [post]
func (c *CheckoutHandler) startCheckout(w http.ResponseWriter, r *http.Request) {
	res, err := c.checkoutUsecase.Start(r.Context(), sessionID(r))
	if err != nil {
		fail(c.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCheckoutResponse(res))
}

// advanceCheckout
//
//	@Summary	Следующий шаг оформления
//	@Tags		checkout
//	@Accept		json
//	@Produce	json
//	@Param		body	body		advanceCheckoutRequest	false	"Данные текущего шага"
//	@Success	200		{object}	checkoutResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/checkout/advance [post]
func (c *CheckoutHandler) advanceCheckout(w http.ResponseWriter, r *http.Request) {
	var body advanceCheckoutRequest
	if err := decodeJSON(w, r, &body, true); err != nil {
		fail(c.logger, w, r, err)
		return
	}

	res, err := c.checkoutUsecase.Advance(r.Context(), sessionID(r), usecase.NewAdvanceCheckoutReq(body.Delivery.toDomain(), body.PaymentMethod))
	if err != nil {
		fail(c.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCheckoutResponse(res))
}

// confirmCheckout
//
//	@Summary		Подтверждение заказа
//	@Description	Запускает обработку платежа. Результат виден через GET /checkout
//	@Tags			checkout
//	@Produce		json
//	@Success		202	{object}	checkoutResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/checkout/confirm [post]
func (c *CheckoutHandler) confirmCheckout(w http.ResponseWriter, r *http.Request) {
	res, err := c.checkoutUsecase.Confirm(r.Context(), sessionID(r))
	if err != nil {
		fail(c.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusAccepted, toCheckoutResponse(res))
}

// listOrders
//
//	@Summary	История заказов
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}	orderDTO
//	@Router		/orders [get]
func (c *CheckoutHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toOrderDTOs(c.orderUsecase.Orders(r.Context(), sessionID(r))))
}

// reorder
//
//	@Summary		Повторный заказ
//	@Description	Добавляет по одному флакону 50ml каждого товара заказа
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		string	true	"ID заказа"
//	@Success		200	{object}	sessionResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/orders/{id}/reorder [post]
func (c *CheckoutHandler) reorder(w http.ResponseWriter, r *http.Request) {
	res, err := c.orderUsecase.Reorder(r.Context(), sessionID(r), chi.URLParam(r, "id"))
	if err != nil {
		fail(c.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toSessionResponse(res))
}
