package usecase

import (
	"context"

	"github.com/DRSN-tech/frag-avenue/internal/catalog"
	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
)

// OrderUseCase — история заказов и повторный заказ.
type OrderUseCase struct {
	sessions *Sessions
	catalog  *catalog.Catalog
	logger   logger.Logger
}

func NewOrderUC(sessions *Sessions, catalog *catalog.Catalog, logger logger.Logger) *OrderUseCase {
	return &OrderUseCase{
		sessions: sessions,
		catalog:  catalog,
		logger:   logger,
	}
}

// Orders возвращает заказы сессии, новые первыми.
func (o *OrderUseCase) Orders(ctx context.Context, sid string) []domain.Order {
	return o.sessions.Get(ctx, sid).Orders.List()
}

// Reorder кладёт в корзину по одному флакону 50ml каждого товара заказа.
// Товары, которых больше нет в каталоге, пропускаются.
func (o *OrderUseCase) Reorder(ctx context.Context, sid, orderID string) (*SessionRes, error) {
	const op = "OrderUseCase.Reorder"

	sess := o.sessions.Get(ctx, sid)
	order, ok := sess.Orders.Find(orderID)
	if !ok {
		return nil, e.Wrap(op+": "+orderID, e.ErrOrderNotFound)
	}

	var added int
	for _, item := range order.Items {
		if _, ok := o.catalog.Product(item.ProductID); !ok {
			o.logger.Warnf("reorder %s: product %s is no longer in catalog", orderID, item.ProductID)
			continue
		}
		sess.Store.AddToCart(ctx, item.ProductID, domain.DefaultSize, 1)
		added++
	}
	o.logger.Infof("session %s reordered %s: %d of %d items", sid, orderID, added, len(order.Items))

	snap := sess.Store.Snapshot()
	return &SessionRes{
		Snapshot:   snap,
		Lines:      cartLines(o.catalog, snap),
		Navigation: sess.Shell.Current(),
	}, nil
}
