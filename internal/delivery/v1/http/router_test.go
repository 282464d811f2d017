package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DRSN-tech/frag-avenue/internal/catalog"
	"github.com/DRSN-tech/frag-avenue/internal/cfg"
	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/internal/repository/memory"
	"github.com/DRSN-tech/frag-avenue/internal/usecase"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSession = "0b7c6f7e-1f0a-4c55-9a53-6d3f3f6c2a10"

type client struct {
	t      *testing.T
	srv    *httptest.Server
	cookie *http.Cookie
}

func newTestServer(t *testing.T) *client {
	t.Helper()

	c, err := catalog.New([]domain.Product{
		{ID: "p1", Name: "Baccarat Rouge 540", Brand: "MFK", Category: domain.CategoryUnisex, FragranceType: domain.FragranceExtrait, Price: 45500, IsBestSeller: true, Rating: 4.9},
		{ID: "p2", Name: "Oud Silk Mood", Brand: "MFK", Category: domain.CategoryMen, FragranceType: domain.FragranceEDP, Price: 36000, Rating: 4.8},
		{ID: "p3", Name: "Santal 33", Brand: "Le Labo", Category: domain.CategoryUnisex, FragranceType: domain.FragranceEDP, Price: 28000, IsNew: true, Rating: 4.6},
	}, []domain.Review{{ID: "r1", Text: "Stunning", Rating: 5, Name: "Ayesha", Location: "Dhaka"}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	log := logger.NewNopLogger()
	sim := &cfg.SimulationCfg{AuthDelay: time.Millisecond, ProfileSaveDelay: time.Millisecond, CheckoutDelay: 5 * time.Millisecond}
	sessions := usecase.NewSessions(ctx, c, memory.NewKVRepo(), log)

	mux := chi.NewRouter()
	httpCfg := &cfg.HTTPConfig{SwaggerURL: "/swagger/doc.json"}
	NewRouter(mux, httpCfg, func() string { return testSession }, time.Hour, log).Init(UseCases{
		Product:  usecase.NewProductUC(c, nil, log),
		Session:  usecase.NewSessionUC(sessions, c, log),
		Auth:     usecase.NewAuthUC(sessions, sim, log),
		Checkout: usecase.NewCheckoutUC(sessions, c, nil, sim, log),
		Order:    usecase.NewOrderUC(sessions, c, log),
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &client{t: t, srv: srv}
}

// do выполняет запрос и декодирует JSON-ответ в out, если он задан.
func (c *client) do(method, path string, body any, out any) int {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, c.srv.URL+"/api/v1"+path, &buf)
	require.NoError(c.t, err)
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	resp, err := c.srv.Client().Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	for _, ck := range resp.Cookies() {
		if ck.Name == SessionCookie {
			c.cookie = ck
		}
	}

	if out != nil {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp.StatusCode
}

func TestSessionCookieIssued(t *testing.T) {
	c := newTestServer(t)

	var res sessionResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/cart", nil, &res))
	require.NotNil(t, c.cookie)
	assert.Equal(t, testSession, c.cookie.Value)
	assert.True(t, c.cookie.HttpOnly)
	assert.Equal(t, "home", res.Navigation.View)
	assert.Empty(t, res.Cart)
	assert.Nil(t, res.User)
}

func TestInvalidSessionCookieReplaced(t *testing.T) {
	c := newTestServer(t)
	c.cookie = &http.Cookie{Name: SessionCookie, Value: "../../etc"}

	c.do(http.MethodGet, "/cart", nil, nil)
	assert.Equal(t, testSession, c.cookie.Value)
}

func TestListProductsEndpoint(t *testing.T) {
	c := newTestServer(t)

	var res listProductsResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/products?category=Unisex&sort=PriceLow", nil, &res))
	require.Equal(t, 2, res.Count)
	assert.Equal(t, "p3", res.Products[0].ID)
	assert.Equal(t, "Eau de Parfum", res.Products[0].TypeName)
	assert.Equal(t, 2, res.ActiveFilters)
	assert.Equal(t, priceRangeDTO{Min: 28000, Max: 45500}, res.PriceBounds)

	var errRes ErrorResponse
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/products?maxPrice=100.5", nil, &errRes))
	assert.Equal(t, "price must be a whole number", errRes.Message)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/products?category=Kids", nil, nil))
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/products?bestSellers=maybe", nil, nil))
}

func TestProductEndpoints(t *testing.T) {
	c := newTestServer(t)

	var detail productDetailResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/products/p1", nil, &detail))
	assert.Equal(t, "Baccarat Rouge 540", detail.Product.Name)
	require.NotEmpty(t, detail.Related)
	assert.Equal(t, "p3", detail.Related[0].ID)

	var related []productDTO
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/products/p1/related?limit=1", nil, &related))
	assert.Len(t, related, 1)

	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/products/nope", nil, nil))
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/products/p1/image", nil, nil))

	var home homeResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/home", nil, &home))
	assert.Len(t, home.BestSellers, 1)
	assert.Len(t, home.NewArrivals, 1)

	var reviews reviewsResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/reviews?index=4", nil, &reviews))
	assert.Equal(t, 0, reviews.Current)
	assert.Equal(t, 0, reviews.Next)
}

func TestCartEndpoints(t *testing.T) {
	c := newTestServer(t)

	var res sessionResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/cart/items", addToCartRequest{ProductID: "p2", Size: "100ml", Quantity: 2}, &res))
	require.Len(t, res.Cart, 1)
	assert.Equal(t, int64(72000), res.TotalCartPrice)
	assert.True(t, res.CartPanelOpen)
	require.NotNil(t, res.Cart[0].Product)
	itemID := res.Cart[0].ID

	require.Equal(t, http.StatusOK, c.do(http.MethodPatch, "/cart/items/"+itemID, updateQuantityRequest{Quantity: 3}, &res))
	assert.Equal(t, 3, res.Cart[0].Quantity)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPatch, "/cart/items/"+itemID, updateQuantityRequest{Quantity: 0}, nil))
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPatch, "/cart/items/"+itemID, updateQuantityRequest{Quantity: 100}, nil))
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/cart/items", addToCartRequest{ProductID: "p2", Size: "100ml", Quantity: 98}, nil))
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/cart/items", map[string]any{"productId": "p2", "color": "red"}, nil))
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodPost, "/cart/items", addToCartRequest{ProductID: "nope"}, nil))

	require.Equal(t, http.StatusOK, c.do(http.MethodPut, "/cart/panel", cartPanelRequest{Open: false}, &res))
	assert.False(t, res.CartPanelOpen)

	require.Equal(t, http.StatusOK, c.do(http.MethodDelete, "/cart/items/"+itemID, nil, &res))
	assert.Empty(t, res.Cart)
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodDelete, "/cart/items/"+itemID, nil, nil))

	c.do(http.MethodPost, "/cart/items", addToCartRequest{ProductID: "p1"}, nil)
	require.Equal(t, http.StatusOK, c.do(http.MethodDelete, "/cart", nil, &res))
	assert.Empty(t, res.Cart)
}

func TestWishlistAndNavigation(t *testing.T) {
	c := newTestServer(t)

	var toggled wishlistToggleResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/wishlist/p3", nil, &toggled))
	assert.True(t, toggled.Wishlisted)

	var wishlist []productDTO
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/wishlist", nil, &wishlist))
	require.Len(t, wishlist, 1)
	assert.Equal(t, "Santal 33", wishlist[0].Name)

	var nav navigationDTO
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/navigation", navigateRequest{View: "wishlist"}, &nav))
	assert.Equal(t, "profile", nav.View)

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/navigation", navigateRequest{View: "product-detail"}, &nav))
	assert.Equal(t, "product-detail", nav.View)
	assert.Equal(t, "home", nav.Rendered)

	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/navigation", nil, &nav))
	assert.Equal(t, "product-detail", nav.View)
}

func TestAuthAndProfileEndpoints(t *testing.T) {
	c := newTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/profile", nil, nil))

	var user userDTO
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/auth/login", loginRequest{Email: "jane@example.com"}, &user))
	assert.Equal(t, "jane", user.Name)

	var profile profileResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/profile", nil, &profile))
	assert.Equal(t, "jane@example.com", profile.User.Email)
	assert.NotEmpty(t, profile.Address)

	require.Equal(t, http.StatusOK, c.do(http.MethodPut, "/profile", profileRequest{
		Name: "Jane Doe", Email: "jane@example.com", Address: "Road 5", PaymentMethod: "bKash",
	}, &user))
	require.NotNil(t, user.PaymentMethod)
	assert.Equal(t, "bKash", *user.PaymentMethod)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/auth/signup", signUpRequest{Email: "x@y.z"}, nil))
	assert.Equal(t, http.StatusNoContent, c.do(http.MethodPost, "/auth/logout", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/profile", nil, nil))

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/auth/google", nil, &user))
	assert.Equal(t, "Julian Vane", user.Name)
}

func TestCheckoutEndpoints(t *testing.T) {
	c := newTestServer(t)

	assert.Equal(t, http.StatusConflict, c.do(http.MethodPost, "/checkout/start", nil, nil))

	c.do(http.MethodPost, "/cart/items", addToCartRequest{ProductID: "p1", Quantity: 2}, nil)

	var co checkoutResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/checkout/start", nil, &co))
	assert.Equal(t, "delivery", co.Step)
	assert.Equal(t, 1, co.StepNumber)

	assert.Equal(t, http.StatusConflict, c.do(http.MethodPost, "/checkout/confirm", nil, nil))

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/checkout/advance", advanceCheckoutRequest{
		Delivery: &deliveryDTO{FullName: "Jane Doe", Phone: "+8801700000000", Address: "Road 5", City: "Dhaka"},
	}, &co))
	assert.Equal(t, "payment", co.Step)
	assert.Equal(t, "Dhaka", co.Delivery.City)

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/checkout/advance", nil, &co))
	assert.Equal(t, "review", co.Step)

	require.Equal(t, http.StatusAccepted, c.do(http.MethodPost, "/checkout/confirm", nil, &co))
	assert.True(t, co.Processing)

	require.Eventually(t, func() bool {
		var st checkoutResponse
		c.do(http.MethodGet, "/checkout", nil, &st)
		return st.Step == "complete" && !st.Processing
	}, time.Second, 10*time.Millisecond)

	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/checkout", nil, &co))
	require.NotNil(t, co.LastOrder)
	assert.Equal(t, int64(91000), co.LastOrder.Total)
	assert.Empty(t, co.Items)

	var orders []orderDTO
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/orders", nil, &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, co.LastOrder.ID, orders[0].ID)

	var res sessionResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, fmt.Sprintf("/orders/%s/reorder", orders[0].ID), nil, &res))
	require.Len(t, res.Cart, 1)
	assert.Equal(t, "50ml", res.Cart[0].Size)
	assert.Equal(t, 1, res.Cart[0].Quantity)

	assert.Equal(t, http.StatusNotFound, c.do(http.MethodPost, "/orders/FRV-NOPE0000/reorder", nil, nil))
}
