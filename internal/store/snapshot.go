package store

import (
	"time"

	"github.com/DRSN-tech/frag-avenue/internal/domain"
)

// Модели снимков. Формат совпадает с тем, что витрина хранит в localStorage.

type cartItemModel struct {
	ID               string `json:"id"`
	ProductID        string `json:"productId"`
	Size             string `json:"size"`
	Quantity         int    `json:"quantity"`
	PriceAtSelection int64  `json:"priceAtSelection"`
}

type userModel struct {
	Email         string   `json:"email"`
	Name          string   `json:"name"`
	Address       *string  `json:"address,omitempty"`
	PaymentMethod *string  `json:"paymentMethod,omitempty"`
	Wishlist      []string `json:"wishlist"`
}

func toCartModels(items []domain.CartItem) []cartItemModel {
	res := make([]cartItemModel, len(items))
	for i, item := range items {
		res[i] = cartItemModel{
			ID:               item.ID,
			ProductID:        item.ProductID,
			Size:             string(item.Size),
			Quantity:         item.Quantity,
			PriceAtSelection: item.PriceAtSelection,
		}
	}

	return res
}

// toCartItems пропускает позиции с количеством вне допустимого диапазона.
func toCartItems(models []cartItemModel) []domain.CartItem {
	res := make([]domain.CartItem, 0, len(models))
	for _, m := range models {
		if !domain.ValidQuantity(m.Quantity) {
			continue
		}
		res = append(res, *domain.NewCartItem(m.ID, m.ProductID, domain.Size(m.Size), m.Quantity, m.PriceAtSelection))
	}

	return res
}

func toUserModel(u *domain.User) userModel {
	wishlist := u.Wishlist
	if wishlist == nil {
		wishlist = []string{}
	}

	return userModel{
		Email:         u.Email,
		Name:          u.Name,
		Address:       u.Address,
		PaymentMethod: u.PaymentMethod,
		Wishlist:      wishlist,
	}
}

func toUser(m userModel) *domain.User {
	return &domain.User{
		Email:         m.Email,
		Name:          m.Name,
		Address:       m.Address,
		PaymentMethod: m.PaymentMethod,
		Wishlist:      append([]string{}, m.Wishlist...),
	}
}

type orderItemModel struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

type deliveryModel struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Notes    string `json:"notes,omitempty"`
}

type orderModel struct {
	ID       string           `json:"id"`
	PlacedAt time.Time        `json:"placedAt"`
	Items    []orderItemModel `json:"items"`
	Total    int64            `json:"total"`
	Status   string           `json:"status"`
	Delivery deliveryModel    `json:"delivery"`
}

func toOrderModels(orders []domain.Order) []orderModel {
	res := make([]orderModel, len(orders))
	for i, o := range orders {
		items := make([]orderItemModel, len(o.Items))
		for j, it := range o.Items {
			items[j] = orderItemModel{
				ProductID: it.ProductID,
				Name:      it.Name,
				Brand:     it.Brand,
				Size:      string(it.Size),
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			}
		}

		res[i] = orderModel{
			ID:       o.ID,
			PlacedAt: o.PlacedAt,
			Items:    items,
			Total:    o.Total,
			Status:   string(o.Status),
			Delivery: deliveryModel(o.Delivery),
		}
	}

	return res
}

func toOrders(models []orderModel) []domain.Order {
	res := make([]domain.Order, len(models))
	for i, m := range models {
		items := make([]domain.OrderItem, len(m.Items))
		for j, it := range m.Items {
			items[j] = domain.OrderItem{
				ProductID: it.ProductID,
				Name:      it.Name,
				Brand:     it.Brand,
				Size:      domain.Size(it.Size),
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			}
		}

		res[i] = domain.Order{
			ID:       m.ID,
			PlacedAt: m.PlacedAt,
			Items:    items,
			Total:    m.Total,
			Status:   domain.OrderStatus(m.Status),
			Delivery: domain.Delivery(m.Delivery),
		}
	}

	return res
}
