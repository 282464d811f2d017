package usecase

import (
	"time"

	"github.com/DRSN-tech/frag-avenue/internal/catalog"
	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/internal/navigation"
	"github.com/DRSN-tech/frag-avenue/internal/store"
)

// PRODUCT USECASE

// ListProductsReq — параметры витрины магазина. Nil-границы цены означают
// границы всего каталога.
type ListProductsReq struct {
	Text            string
	Category        domain.Category
	PriceMin        *int64
	PriceMax        *int64
	BestSellersOnly bool
	MinRating       float64
	Sort            catalog.SortOrder
}

// ListProductsRes — отфильтрованная витрина с метаданными фильтров.
type ListProductsRes struct {
	Products      []domain.Product
	Query         catalog.Query
	Bounds        catalog.PriceRange
	ActiveFilters int
}

type ProductDetailRes struct {
	Product domain.Product
	Related []domain.Product
}

type HomeRes struct {
	BestSellers []domain.Product
	NewArrivals []domain.Product
}

type ReviewsRes struct {
	Reviews []domain.Review
	Current int
	Next    int
}

// SESSION USECASE

// AddToCartReq — добавление товара в корзину. Пустой размер означает 50ml, нулевое количество означает 1.
type AddToCartReq struct {
	ProductID string
	Size      string
	Quantity  int
}

type NavigateReq struct {
	View         string
	CategoryHint string
}

// CartLine — позиция корзины вместе с товаром каталога.
// Found == false, если товара больше нет в каталоге.
type CartLine struct {
	Item    domain.CartItem
	Product domain.Product
	Found   bool
}

type SessionRes struct {
	Snapshot   store.Snapshot
	Lines      []CartLine
	Navigation navigation.State
}

// AUTH USECASE

type LoginReq struct {
	Email string
}

type SignUpReq struct {
	Name  string
	Email string
}

type UpdateProfileReq struct {
	Name          string
	Email         string
	Address       string
	PaymentMethod string
}

// ProfileRes — профиль с подставленными значениями адреса и оплаты по умолчанию.
type ProfileRes struct {
	User          domain.User
	Address       string
	PaymentMethod string
	Wishlist      []domain.Product
	Orders        []domain.Order
}

// CHECKOUT USECASE

// CheckoutStep — шаг оформления заказа
type CheckoutStep int

const (
	StepDelivery CheckoutStep = iota + 1
	StepPayment
	StepReview
	StepComplete
)

func (s CheckoutStep) String() string {
	switch s {
	case StepDelivery:
		return "delivery"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	case StepComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// AdvanceCheckoutReq — данные текущего шага. Пустые поля оставляют ранее введённые значения.
type AdvanceCheckoutReq struct {
	Delivery      *domain.Delivery
	PaymentMethod string
}

type CheckoutRes struct {
	Step          CheckoutStep
	Processing    bool
	Delivery      domain.Delivery
	PaymentMethod string
	Lines         []CartLine
	Total         int64
	LastOrder     *domain.Order
}

// INFRASTRUCTURE

// OrderPlacedEventType — тип события об оформленном заказе
const OrderPlacedEventType = "order.placed"

// OrderPlacedEvent публикуется после оформления заказа.
type OrderPlacedEvent struct {
	EventID    string
	EventType  string
	OccurredAt time.Time
	SessionID  string
	Order      domain.Order
}

// MAPPERS

func NewListProductsRes(products []domain.Product, q catalog.Query, bounds catalog.PriceRange, active int) *ListProductsRes {
	return &ListProductsRes{
		Products:      products,
		Query:         q,
		Bounds:        bounds,
		ActiveFilters: active,
	}
}

func NewProductDetailRes(product domain.Product, related []domain.Product) *ProductDetailRes {
	return &ProductDetailRes{
		Product: product,
		Related: related,
	}
}

func NewHomeRes(bestSellers, newArrivals []domain.Product) *HomeRes {
	return &HomeRes{
		BestSellers: bestSellers,
		NewArrivals: newArrivals,
	}
}

func NewReviewsRes(reviews []domain.Review, current, next int) *ReviewsRes {
	return &ReviewsRes{
		Reviews: reviews,
		Current: current,
		Next:    next,
	}
}

func NewAddToCartReq(productID, size string, quantity int) *AddToCartReq {
	return &AddToCartReq{
		ProductID: productID,
		Size:      size,
		Quantity:  quantity,
	}
}

func NewNavigateReq(view, categoryHint string) *NavigateReq {
	return &NavigateReq{
		View:         view,
		CategoryHint: categoryHint,
	}
}

func NewLoginReq(email string) *LoginReq {
	return &LoginReq{Email: email}
}

func NewSignUpReq(name, email string) *SignUpReq {
	return &SignUpReq{Name: name, Email: email}
}

func NewUpdateProfileReq(name, email, address, paymentMethod string) *UpdateProfileReq {
	return &UpdateProfileReq{
		Name:          name,
		Email:         email,
		Address:       address,
		PaymentMethod: paymentMethod,
	}
}

func NewAdvanceCheckoutReq(delivery *domain.Delivery, paymentMethod string) *AdvanceCheckoutReq {
	return &AdvanceCheckoutReq{
		Delivery:      delivery,
		PaymentMethod: paymentMethod,
	}
}

func NewOrderPlacedEvent(eventID string, occurredAt time.Time, sessionID string, order domain.Order) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		EventID:    eventID,
		EventType:  OrderPlacedEventType,
		OccurredAt: occurredAt,
		SessionID:  sessionID,
		Order:      order,
	}
}
