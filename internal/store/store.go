// Package store содержит контейнер состояния покупателя: корзину, избранное и
// текущего пользователя. Каждое изменение зеркалируется в key-value хранилище.
package store

import (
	"context"
	"encoding/json"
	"slices"
	"sync"

	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
	"github.com/google/uuid"
)

// Store — владелец состояния одной сессии. Все поля приватны, снаружи доступны
// только операции. Ошибки "не найдено" и количество вне [1, MaxQuantity] молча игнорируются.
type Store struct {
	mu      sync.Mutex
	catalog ProductCatalog
	storage Storage
	logger  logger.Logger
	newID   func() string

	cart          []domain.CartItem
	wishlist      []string
	user          *domain.User
	cartPanelOpen bool
}

type Option func(*Store)

// WithIDGenerator задаёт генератор идентификаторов позиций корзины.
func WithIDGenerator(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

// New создаёт Store и принимает сохранённые снимки. Отсутствующий или
// повреждённый снимок заменяется значением по умолчанию.
func New(ctx context.Context, catalog ProductCatalog, storage Storage, logger logger.Logger, opts ...Option) *Store {
	s := &Store{
		catalog:  catalog,
		storage:  storage,
		logger:   logger,
		newID:    uuid.NewString,
		cart:     []domain.CartItem{},
		wishlist: []string{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.load(ctx)
	return s
}

// AddToCart добавляет продукт в корзину или увеличивает количество существующей позиции
// с тем же объёмом и открывает панель корзины. Возвращает false, если корзина не изменилась:
// продукт неизвестен, объём неверный или итоговое количество превысило бы MaxQuantity.
func (s *Store) AddToCart(ctx context.Context, productID string, size domain.Size, quantity int) bool {
	product, ok := s.catalog.Product(productID)
	if !ok {
		return false
	}
	if _, ok := domain.ParseSize(string(size)); !ok || !domain.ValidQuantity(quantity) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.cart, func(item domain.CartItem) bool {
		return item.ProductID == productID && item.Size == size
	})
	if idx >= 0 {
		merged := s.cart[idx].Quantity + quantity
		if !domain.ValidQuantity(merged) {
			return false
		}
		s.cart[idx].Quantity = merged
	} else {
		s.cart = append(s.cart, *domain.NewCartItem(s.newID(), productID, size, quantity, product.Price))
	}
	s.cartPanelOpen = true

	s.persistCart(ctx)
	return true
}

// RemoveFromCart удаляет позицию корзины.
func (s *Store) RemoveFromCart(ctx context.Context, cartItemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.cartIndex(cartItemID)
	if idx < 0 {
		return
	}
	s.cart = slices.Delete(s.cart, idx, idx+1)

	s.persistCart(ctx)
}

// RemoveCartItems убирает перечисленные позиции одной записью в хранилище.
// Неизвестные идентификаторы пропускаются.
func (s *Store) RemoveCartItems(ctx context.Context, cartItemIDs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.cart)
	s.cart = slices.DeleteFunc(s.cart, func(item domain.CartItem) bool {
		return slices.Contains(cartItemIDs, item.ID)
	})
	if len(s.cart) == n {
		return
	}

	s.persistCart(ctx)
}

// UpdateCartQuantity устанавливает количество позиции. Значения вне [1, MaxQuantity] игнорируются.
func (s *Store) UpdateCartQuantity(ctx context.Context, cartItemID string, quantity int) {
	if !domain.ValidQuantity(quantity) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.cartIndex(cartItemID)
	if idx < 0 {
		return
	}
	s.cart[idx].Quantity = quantity

	s.persistCart(ctx)
}

// ClearCart очищает корзину.
func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = []domain.CartItem{}
	s.persistCart(ctx)
}

// ToggleWishlist добавляет продукт в избранное или убирает его оттуда.
func (s *Store) ToggleWishlist(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := slices.Index(s.wishlist, productID); idx >= 0 {
		s.wishlist = slices.Delete(s.wishlist, idx, idx+1)
	} else {
		s.wishlist = append(s.wishlist, productID)
	}

	s.persistWishlist(ctx)
}

// SetUser заменяет текущего пользователя. nil означает выход.
func (s *Store) SetUser(ctx context.Context, user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user.Clone()
	s.persistUser(ctx)
}

// Logout эквивалентен SetUser(nil).
func (s *Store) Logout(ctx context.Context) {
	s.SetUser(ctx, nil)
}

func (s *Store) SetCartPanelOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cartPanelOpen = open
}

func (s *Store) IsCartPanelOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cartPanelOpen
}

// Cart возвращает копию корзины.
func (s *Store) Cart() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.cart)
}

// CartItem возвращает позицию корзины по идентификатору.
func (s *Store) CartItem(cartItemID string) (domain.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.cartIndex(cartItemID)
	if idx < 0 {
		return domain.CartItem{}, false
	}

	return s.cart[idx], true
}

// CartCount — число позиций корзины (бейдж в шапке).
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.cart)
}

// TotalCartPrice считает сумму корзины по текущим ценам каталога.
// Позиции с продуктами, которых больше нет в каталоге, дают 0.
func (s *Store) TotalCartPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.totalCartPrice()
}

// CheckoutTotal считает сумму по ценам на момент добавления в корзину.
func (s *Store) CheckoutTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, item := range s.cart {
		total += item.PriceAtSelection * int64(item.Quantity)
	}

	return total
}

// Wishlist возвращает идентификаторы избранного в порядке добавления.
func (s *Store) Wishlist() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.wishlist)
}

func (s *Store) IsWishlisted(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Contains(s.wishlist, productID)
}

// User возвращает копию текущего пользователя или nil.
func (s *Store) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.user.Clone()
}

// Snapshot — согласованный срез состояния для отображения
type Snapshot struct {
	Cart           []domain.CartItem
	CartCount      int
	TotalCartPrice int64
	CheckoutTotal  int64
	Wishlist       []string
	User           *domain.User
	CartPanelOpen  bool
}

// Snapshot возвращает состояние, прочитанное под одной блокировкой.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var checkoutTotal int64
	for _, item := range s.cart {
		checkoutTotal += item.PriceAtSelection * int64(item.Quantity)
	}

	return Snapshot{
		Cart:           slices.Clone(s.cart),
		CartCount:      len(s.cart),
		TotalCartPrice: s.totalCartPrice(),
		CheckoutTotal:  checkoutTotal,
		Wishlist:       slices.Clone(s.wishlist),
		User:           s.user.Clone(),
		CartPanelOpen:  s.cartPanelOpen,
	}
}

func (s *Store) totalCartPrice() int64 {
	var total int64
	for _, item := range s.cart {
		price, ok := s.catalog.Price(item.ProductID)
		if !ok {
			continue
		}
		total += price * int64(item.Quantity)
	}

	return total
}

func (s *Store) cartIndex(cartItemID string) int {
	return slices.IndexFunc(s.cart, func(item domain.CartItem) bool { return item.ID == cartItemID })
}

// load читает три снимка независимо друг от друга.
func (s *Store) load(ctx context.Context) {
	var cart []cartItemModel
	if s.readSnapshot(ctx, CartKey, &cart) && cart != nil {
		s.cart = toCartItems(cart)
	}

	var wishlist []string
	if s.readSnapshot(ctx, WishlistKey, &wishlist) && wishlist != nil {
		s.wishlist = wishlist
	}

	var user *userModel
	if s.readSnapshot(ctx, UserKey, &user) && user != nil {
		s.user = toUser(*user)
	}
}

func (s *Store) readSnapshot(ctx context.Context, key string, dst any) bool {
	const op = "Store.readSnapshot"

	data, err := s.storage.Get(ctx, key)
	if err != nil {
		s.logger.Warnf("failed to read %s snapshot: %v", key, e.Wrap(op, err))
		return false
	}
	if data == nil {
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.Warnf("malformed %s snapshot ignored: %v", key, e.Wrap(op, err))
		return false
	}

	return true
}

func (s *Store) persistCart(ctx context.Context) {
	s.writeSnapshot(ctx, CartKey, toCartModels(s.cart))
}

func (s *Store) persistWishlist(ctx context.Context) {
	s.writeSnapshot(ctx, WishlistKey, s.wishlist)
}

func (s *Store) persistUser(ctx context.Context) {
	const op = "Store.persistUser"

	if s.user == nil {
		if err := s.storage.Delete(ctx, UserKey); err != nil {
			s.logger.Warnf("failed to delete %s snapshot: %v", UserKey, e.Wrap(op, err))
		}
		return
	}

	s.writeSnapshot(ctx, UserKey, toUserModel(s.user))
}

// writeSnapshot сериализует значение целиком. Ошибки только логируются.
func (s *Store) writeSnapshot(ctx context.Context, key string, value any) {
	const op = "Store.writeSnapshot"

	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warnf("failed to marshal %s snapshot: %v", key, e.Wrap(op, err))
		return
	}

	if err := s.storage.Set(ctx, key, data); err != nil {
		s.logger.Warnf("failed to persist %s snapshot: %v", key, e.Wrap(op, err))
	}
}
