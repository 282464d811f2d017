package usecase

import (
	"context"

	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/internal/navigation"
)

type ProductUC interface {
	ListProducts(ctx context.Context, req *ListProductsReq) (*ListProductsRes, error)
	GetProduct(ctx context.Context, id string) (*ProductDetailRes, error)
	RelatedProducts(ctx context.Context, id string, limit int) ([]domain.Product, error)
	Home(ctx context.Context) *HomeRes
	Reviews(ctx context.Context, index int) *ReviewsRes
	ImageURL(ctx context.Context, id string) (string, error)
}

type SessionUC interface {
	State(ctx context.Context, sid string) *SessionRes
	AddToCart(ctx context.Context, sid string, req *AddToCartReq) (*SessionRes, error)
	UpdateCartQuantity(ctx context.Context, sid, itemID string, quantity int) (*SessionRes, error)
	RemoveFromCart(ctx context.Context, sid, itemID string) (*SessionRes, error)
	ClearCart(ctx context.Context, sid string) *SessionRes
	SetCartPanel(ctx context.Context, sid string, open bool) *SessionRes
	ToggleWishlist(ctx context.Context, sid, productID string) (bool, error)
	Wishlist(ctx context.Context, sid string) []domain.Product
	Navigate(ctx context.Context, sid string, req *NavigateReq) navigation.State
	Navigation(ctx context.Context, sid string) navigation.State
}

type AuthUC interface {
	Login(ctx context.Context, sid string, req *LoginReq) (*domain.User, error)
	SignUp(ctx context.Context, sid string, req *SignUpReq) (*domain.User, error)
	GoogleLogin(ctx context.Context, sid string) (*domain.User, error)
	Logout(ctx context.Context, sid string)
	Profile(ctx context.Context, sid string) (*ProfileRes, error)
	UpdateProfile(ctx context.Context, sid string, req *UpdateProfileReq) (*domain.User, error)
}

type CheckoutUC interface {
	State(ctx context.Context, sid string) *CheckoutRes
	Start(ctx context.Context, sid string) (*CheckoutRes, error)
	Advance(ctx context.Context, sid string, req *AdvanceCheckoutReq) (*CheckoutRes, error)
	Confirm(ctx context.Context, sid string) (*CheckoutRes, error)
}

type OrderUC interface {
	Orders(ctx context.Context, sid string) []domain.Order
	Reorder(ctx context.Context, sid, orderID string) (*SessionRes, error)
}
