package usecase

import (
	"context"

	"github.com/DRSN-tech/frag-avenue/internal/catalog"
	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/internal/navigation"
	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
)

// SessionUseCase — корзина, избранное и навигация покупателя.
// Store молча игнорирует неизвестные товары; здесь такие запросы отклоняются явно.
type SessionUseCase struct {
	sessions *Sessions
	catalog  *catalog.Catalog
	logger   logger.Logger
}

func NewSessionUC(sessions *Sessions, catalog *catalog.Catalog, logger logger.Logger) *SessionUseCase {
	return &SessionUseCase{
		sessions: sessions,
		catalog:  catalog,
		logger:   logger,
	}
}

func (s *SessionUseCase) State(ctx context.Context, sid string) *SessionRes {
	return s.state(s.sessions.Get(ctx, sid))
}

// AddToCart добавляет товар; по умолчанию 50ml и количество 1.
func (s *SessionUseCase) AddToCart(ctx context.Context, sid string, req *AddToCartReq) (*SessionRes, error) {
	const op = "SessionUseCase.AddToCart"

	size := domain.DefaultSize
	if req.Size != "" {
		parsed, ok := domain.ParseSize(req.Size)
		if !ok {
			return nil, e.Wrap(op+": "+req.Size, e.ErrInvalidSize)
		}
		size = parsed
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if !domain.ValidQuantity(quantity) {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	if _, ok := s.catalog.Product(req.ProductID); !ok {
		return nil, e.Wrap(op+": "+req.ProductID, e.ErrProductNotFound)
	}

	sess := s.sessions.Get(ctx, sid)
	if !sess.Store.AddToCart(ctx, req.ProductID, size, quantity) {
		// объединённая позиция превысила бы MaxQuantity
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	return s.state(sess), nil
}

func (s *SessionUseCase) UpdateCartQuantity(ctx context.Context, sid, itemID string, quantity int) (*SessionRes, error) {
	const op = "SessionUseCase.UpdateCartQuantity"

	if !domain.ValidQuantity(quantity) {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	sess := s.sessions.Get(ctx, sid)
	if _, ok := sess.Store.CartItem(itemID); !ok {
		return nil, e.Wrap(op+": "+itemID, e.ErrCartItemNotFound)
	}
	sess.Store.UpdateCartQuantity(ctx, itemID, quantity)

	return s.state(sess), nil
}

func (s *SessionUseCase) RemoveFromCart(ctx context.Context, sid, itemID string) (*SessionRes, error) {
	const op = "SessionUseCase.RemoveFromCart"

	sess := s.sessions.Get(ctx, sid)
	if _, ok := sess.Store.CartItem(itemID); !ok {
		return nil, e.Wrap(op+": "+itemID, e.ErrCartItemNotFound)
	}
	sess.Store.RemoveFromCart(ctx, itemID)

	return s.state(sess), nil
}

func (s *SessionUseCase) ClearCart(ctx context.Context, sid string) *SessionRes {
	sess := s.sessions.Get(ctx, sid)
	sess.Store.ClearCart(ctx)

	return s.state(sess)
}

func (s *SessionUseCase) SetCartPanel(ctx context.Context, sid string, open bool) *SessionRes {
	sess := s.sessions.Get(ctx, sid)
	sess.Store.SetCartPanelOpen(open)

	return s.state(sess)
}

// ToggleWishlist переключает товар в избранном и возвращает новое состояние.
func (s *SessionUseCase) ToggleWishlist(ctx context.Context, sid, productID string) (bool, error) {
	const op = "SessionUseCase.ToggleWishlist"

	if _, ok := s.catalog.Product(productID); !ok {
		return false, e.Wrap(op+": "+productID, e.ErrProductNotFound)
	}

	sess := s.sessions.Get(ctx, sid)
	sess.Store.ToggleWishlist(ctx, productID)

	return sess.Store.IsWishlisted(productID), nil
}

// Wishlist возвращает товары избранного в порядке каталога.
func (s *SessionUseCase) Wishlist(ctx context.Context, sid string) []domain.Product {
	return s.catalog.ByIDs(s.sessions.Get(ctx, sid).Store.Wishlist())
}

func (s *SessionUseCase) Navigate(ctx context.Context, sid string, req *NavigateReq) navigation.State {
	category, ok := domain.ParseCategory(req.CategoryHint)
	if !ok {
		category = domain.CategoryAll
	}

	st := s.sessions.Get(ctx, sid).Shell.Navigate(req.View, category)
	s.logger.Debugf("session %s navigated to %s", sid, st.View)

	return st
}

func (s *SessionUseCase) Navigation(ctx context.Context, sid string) navigation.State {
	return s.sessions.Get(ctx, sid).Shell.Current()
}

func (s *SessionUseCase) state(sess *Session) *SessionRes {
	snap := sess.Store.Snapshot()

	return &SessionRes{
		Snapshot:   snap,
		Lines:      cartLines(s.catalog, snap),
		Navigation: sess.Shell.Current(),
	}
}
