package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/frag-avenue/internal/catalog"
	"github.com/DRSN-tech/frag-avenue/internal/cfg"
	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/pkg/delayed"
	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/DRSN-tech/frag-avenue/pkg/jitter"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
	"github.com/google/uuid"
)

const (
	orderIDPrefix  = "FRV-"
	orderIDLength  = 8
	publishTimeout = 5 * time.Second
)

// checkoutFlow — состояние оформления заказа одной сессии.
type checkoutFlow struct {
	mu            sync.Mutex
	step          CheckoutStep
	delivery      domain.Delivery
	paymentMethod string
	task          *delayed.Task // не nil, пока заказ обрабатывается
	lastOrder     *domain.Order
}

func newCheckoutFlow() *checkoutFlow {
	return &checkoutFlow{step: StepDelivery}
}

// CheckoutUseCase ведёт покупателя по шагам Delivery → Payment → Review,
// затем имитирует обработку платежа и записывает заказ.
type CheckoutUseCase struct {
	sessions  *Sessions
	catalog   *catalog.Catalog
	publisher OrderPublisher // nil, если Kafka не настроена
	cfg       *cfg.SimulationCfg
	logger    logger.Logger
	now       func() time.Time
	newID     func() string
}

func NewCheckoutUC(
	sessions *Sessions,
	catalog *catalog.Catalog,
	publisher OrderPublisher,
	cfg *cfg.SimulationCfg,
	logger logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		sessions:  sessions,
		catalog:   catalog,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
		newID:     newOrderID,
	}
}

func (c *CheckoutUseCase) State(ctx context.Context, sid string) *CheckoutRes {
	sess := c.sessions.Get(ctx, sid)

	sess.checkout.mu.Lock()
	defer sess.checkout.mu.Unlock()

	return c.state(sess)
}

// Start открывает оформление с первого шага. Пустую корзину оформить нельзя.
func (c *CheckoutUseCase) Start(ctx context.Context, sid string) (*CheckoutRes, error) {
	const op = "CheckoutUseCase.Start"

	sess := c.sessions.Get(ctx, sid)
	flow := sess.checkout

	flow.mu.Lock()
	defer flow.mu.Unlock()

	if flow.task != nil {
		return nil, e.Wrap(op, e.ErrCheckoutProcessing)
	}
	if sess.Store.CartCount() == 0 {
		return nil, e.Wrap(op, e.ErrEmptyCart)
	}

	flow.step = StepDelivery
	flow.delivery = domain.Delivery{}
	flow.paymentMethod = ""
	if user := sess.Store.User(); user != nil {
		flow.delivery.FullName = user.Name
		if user.Address != nil {
			flow.delivery.Address = *user.Address
		}
		if user.PaymentMethod != nil {
			flow.paymentMethod = *user.PaymentMethod
		}
	}

	sess.Store.SetCartPanelOpen(false)
	sess.Shell.Navigate("checkout", domain.CategoryAll)

	return c.state(sess), nil
}

// Advance переходит со шага Delivery на Payment и с Payment на Review.
func (c *CheckoutUseCase) Advance(ctx context.Context, sid string, req *AdvanceCheckoutReq) (*CheckoutRes, error) {
	const op = "CheckoutUseCase.Advance"

	sess := c.sessions.Get(ctx, sid)
	flow := sess.checkout

	flow.mu.Lock()
	defer flow.mu.Unlock()

	if flow.task != nil {
		return nil, e.Wrap(op, e.ErrCheckoutProcessing)
	}

	switch flow.step {
	case StepDelivery:
		if req.Delivery != nil {
			flow.delivery = *req.Delivery
		}
		flow.step = StepPayment
	case StepPayment:
		if req.PaymentMethod != "" {
			flow.paymentMethod = req.PaymentMethod
		}
		flow.step = StepReview
	default:
		return nil, e.Wrap(op+": "+flow.step.String(), e.ErrCheckoutStep)
	}

	return c.state(sess), nil
}

// Confirm запускает обработку заказа на шаге Review. Задача привязана к текущей
// странице: уход с неё отменяет обработку, и заказ не записывается.
func (c *CheckoutUseCase) Confirm(ctx context.Context, sid string) (*CheckoutRes, error) {
	const op = "CheckoutUseCase.Confirm"

	sess := c.sessions.Get(ctx, sid)
	flow := sess.checkout

	flow.mu.Lock()
	defer flow.mu.Unlock()

	if flow.task != nil {
		return nil, e.Wrap(op, e.ErrCheckoutProcessing)
	}
	if flow.step != StepReview {
		return nil, e.Wrap(op+": "+flow.step.String(), e.ErrCheckoutStep)
	}
	// заказ оформляется на корзину в момент подтверждения
	cart := sess.Store.Cart()
	if len(cart) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyCart)
	}

	delay := jitter.Duration(c.cfg.CheckoutDelay, c.cfg.Jitter)
	flow.task = delayed.Run(sess.Shell.ViewContext(), delay, func(ctx context.Context) error {
		return c.placeOrder(ctx, sess, cart)
	}, delayed.OnComplete(func(err error) {
		flow.mu.Lock()
		flow.task = nil
		flow.mu.Unlock()

		if err != nil {
			c.logger.Warnf("checkout for session %s did not complete: %v", sess.ID, e.Wrap(op, err))
		}
	}))

	return c.state(sess), nil
}

// placeOrder записывает заказ из снимка корзины по ценам на момент выбора, убирает
// заказанные позиции из корзины и публикует событие. Позиции, добавленные во время
// обработки, остаются в корзине.
func (c *CheckoutUseCase) placeOrder(ctx context.Context, sess *Session, cart []domain.CartItem) error {
	items := make([]domain.OrderItem, len(cart))
	ordered := make([]string, len(cart))
	for i, item := range cart {
		ordered[i] = item.ID
		product, _ := c.catalog.Product(item.ProductID)
		items[i] = domain.OrderItem{
			ProductID: item.ProductID,
			Name:      product.Name,
			Brand:     product.Brand,
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: item.PriceAtSelection,
		}
	}

	flow := sess.checkout
	flow.mu.Lock()
	order := domain.NewOrder(c.newID(), c.now(), items, flow.delivery)
	flow.mu.Unlock()

	sess.Orders.Add(ctx, *order)
	sess.Store.RemoveCartItems(ctx, ordered...)

	flow.mu.Lock()
	flow.step = StepComplete
	flow.lastOrder = order
	flow.mu.Unlock()

	c.logger.Infof("order %s placed by session %s, total %d", order.ID, sess.ID, order.Total)
	c.publish(context.WithoutCancel(ctx), sess.ID, *order)

	return nil
}

// publish отправляет событие; сбой публикации не отменяет заказ.
func (c *CheckoutUseCase) publish(ctx context.Context, sid string, order domain.Order) {
	const op = "CheckoutUseCase.publish"

	if c.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	event := NewOrderPlacedEvent(uuid.NewString(), c.now(), sid, order)
	if err := c.publisher.PublishOrderPlaced(ctx, event); err != nil {
		c.logger.Errorf(e.Wrap(op, err), "failed to publish %s for order %s", event.EventType, order.ID)
	}
}

// state собирает ответ; вызывается под flow.mu.
func (c *CheckoutUseCase) state(sess *Session) *CheckoutRes {
	flow := sess.checkout
	snap := sess.Store.Snapshot()

	return &CheckoutRes{
		Step:          flow.step,
		Processing:    flow.task != nil,
		Delivery:      flow.delivery,
		PaymentMethod: flow.paymentMethod,
		Lines:         cartLines(c.catalog, snap),
		Total:         snap.CheckoutTotal,
		LastOrder:     flow.lastOrder,
	}
}

// newOrderID возвращает идентификатор вида FRV-1A2B3C4D.
func newOrderID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return orderIDPrefix + strings.ToUpper(raw[:orderIDLength])
}
