package http

import (
	"time"

	_ "github.com/DRSN-tech/frag-avenue/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/frag-avenue/internal/cfg"
	"github.com/DRSN-tech/frag-avenue/internal/usecase"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// UseCases — сценарии, которые обслуживает HTTP API.
type UseCases struct {
	Product  usecase.ProductUC
	Session  usecase.SessionUC
	Auth     usecase.AuthUC
	Checkout usecase.CheckoutUC
	Order    usecase.OrderUC
}

type Router struct {
	router       *chi.Mux
	cfg          *cfg.HTTPConfig
	newSessionID func() string
	sessionTTL   time.Duration
	logger       logger.Logger
}

func NewRouter(router *chi.Mux, cfg *cfg.HTTPConfig, newSessionID func() string, sessionTTL time.Duration, logger logger.Logger) *Router {
	return &Router{
		router:       router,
		cfg:          cfg,
		newSessionID: newSessionID,
		sessionTTL:   sessionTTL,
		logger:       logger,
	}
}

func (r *Router) Init(uc UseCases) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.Recoverer)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(r.cfg.SwaggerURL), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(sessionMiddleware(r.newSessionID, r.cfg.SecureCookie, r.sessionTTL))

		registerProductRoutes(v1, NewProductHandler(uc.Product, r.logger))
		registerSessionRoutes(v1, NewSessionHandler(uc.Session, r.logger))
		registerAuthRoutes(v1, NewAuthHandler(uc.Auth, r.logger))
		registerCheckoutRoutes(v1, NewCheckoutHandler(uc.Checkout, uc.Order, r.logger))
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Get("/home", h.home)
	router.Get("/reviews", h.reviews)
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/{id}", h.getProduct)
		pr.Get("/{id}/related", h.relatedProducts)
		pr.Get("/{id}/image", h.productImage)
	})
}

func registerSessionRoutes(router chi.Router, h *SessionHandler) {
	router.Route("/cart", func(cart chi.Router) {
		cart.Get("/", h.getCart)
		cart.Delete("/", h.clearCart)
		cart.Put("/panel", h.setCartPanel)
		cart.Post("/items", h.addToCart)
		cart.Patch("/items/{id}", h.updateCartItem)
		cart.Delete("/items/{id}", h.removeCartItem)
	})
	router.Route("/wishlist", func(wl chi.Router) {
		wl.Get("/", h.getWishlist)
		wl.Post("/{productId}", h.toggleWishlist)
	})
	router.Get("/navigation", h.getNavigation)
	router.Post("/navigation", h.navigate)
}

func registerAuthRoutes(router chi.Router, h *AuthHandler) {
	router.Route("/auth", func(auth chi.Router) {
		auth.Post("/login", h.login)
		auth.Post("/signup", h.signUp)
		auth.Post("/google", h.googleLogin)
		auth.Post("/logout", h.logout)
	})
	router.Get("/profile", h.getProfile)
	router.Put("/profile", h.updateProfile)
}

func registerCheckoutRoutes(router chi.Router, h *CheckoutHandler) {
	router.Route("/checkout", func(co chi.Router) {
		co.Get("/", h.getCheckout)
		co.Post("/start", h.startCheckout)
		co.Post("/advance", h.advanceCheckout)
		co.Post("/confirm", h.confirmCheckout)
	})
	router.Route("/orders", func(o chi.Router) {
		o.Get("/", h.listOrders)
		o.Post("/{id}/reorder", h.reorder)
	})
}
