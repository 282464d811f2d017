package domain

import "time"

// OrderStatus — статус заказа в истории профиля
type OrderStatus string

const (
	OrderInAtelier OrderStatus = "In Atelier"
	OrderDelivered OrderStatus = "Delivered"
)

// OrderItem — снимок позиции корзины на момент оформления
type OrderItem struct {
	ProductID string
	Name      string
	Brand     string
	Size      Size
	Quantity  int
	UnitPrice int64
}

// Delivery — данные доставки, введённые на первом шаге оформления
type Delivery struct {
	FullName string
	Phone    string
	Address  string
	City     string
	Notes    string
}

// Order описывает оформленный заказ
type Order struct {
	ID       string
	PlacedAt time.Time
	Items    []OrderItem
	Total    int64
	Status   OrderStatus
	Delivery Delivery
}

// NewOrder собирает заказ и считает итог по ценам позиций.
func NewOrder(id string, placedAt time.Time, items []OrderItem, delivery Delivery) *Order {
	var total int64
	for _, item := range items {
		total += item.UnitPrice * int64(item.Quantity)
	}

	return &Order{
		ID:       id,
		PlacedAt: placedAt,
		Items:    items,
		Total:    total,
		Status:   OrderInAtelier,
		Delivery: delivery,
	}
}
