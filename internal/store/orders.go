package store

import (
	"context"
	"encoding/json"
	"slices"
	"sync"

	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
)

// OrderHistory — история заказов сессии. Хранится под ключом OrdersKey
// по тем же правилам, что и снимки Store.
type OrderHistory struct {
	mu      sync.Mutex
	storage Storage
	logger  logger.Logger
	orders  []domain.Order // от новых к старым
}

// NewOrderHistory загружает сохранённую историю; повреждённый снимок даёт пустую.
func NewOrderHistory(ctx context.Context, storage Storage, logger logger.Logger) *OrderHistory {
	const op = "OrderHistory.load"

	h := &OrderHistory{storage: storage, logger: logger, orders: []domain.Order{}}

	data, err := storage.Get(ctx, OrdersKey)
	if err != nil {
		logger.Warnf("failed to read %s snapshot: %v", OrdersKey, e.Wrap(op, err))
		return h
	}
	if data == nil {
		return h
	}

	var models []orderModel
	if err := json.Unmarshal(data, &models); err != nil {
		logger.Warnf("malformed %s snapshot ignored: %v", OrdersKey, e.Wrap(op, err))
		return h
	}
	h.orders = toOrders(models)

	return h
}

// Add записывает заказ первым в истории.
func (h *OrderHistory) Add(ctx context.Context, order domain.Order) {
	const op = "OrderHistory.Add"

	h.mu.Lock()
	defer h.mu.Unlock()

	h.orders = slices.Insert(h.orders, 0, order)

	data, err := json.Marshal(toOrderModels(h.orders))
	if err != nil {
		h.logger.Warnf("failed to marshal %s snapshot: %v", OrdersKey, e.Wrap(op, err))
		return
	}
	if err := h.storage.Set(ctx, OrdersKey, data); err != nil {
		h.logger.Warnf("failed to persist %s snapshot: %v", OrdersKey, e.Wrap(op, err))
	}
}

// List возвращает заказы от новых к старым.
func (h *OrderHistory) List() []domain.Order {
	h.mu.Lock()
	defer h.mu.Unlock()

	return slices.Clone(h.orders)
}

func (h *OrderHistory) Find(id string) (domain.Order, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	idx := slices.IndexFunc(h.orders, func(o domain.Order) bool { return o.ID == id })
	if idx < 0 {
		return domain.Order{}, false
	}

	return h.orders[idx], true
}
