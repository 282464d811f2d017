package http

import (
	"time"

	"github.com/DRSN-tech/frag-avenue/internal/catalog"
	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/internal/navigation"
	"github.com/DRSN-tech/frag-avenue/internal/usecase"
)

// REQUESTS

type addToCartRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartPanelRequest struct {
	Open bool `json:"open"`
}

type navigateRequest struct {
	View     string `json:"view"`
	Category string `json:"category"`
}

type loginRequest struct {
	Email string `json:"email"`
}

type signUpRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type profileRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod"`
}

type advanceCheckoutRequest struct {
	Delivery      *deliveryDTO `json:"delivery,omitempty"`
	PaymentMethod string       `json:"paymentMethod,omitempty"`
}

// RESPONSES

type productDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Brand        string   `json:"brand"`
	Category     string   `json:"category"`
	Type         string   `json:"type"`
	TypeName     string   `json:"typeName"`
	Price        int64    `json:"price"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	IsNew        bool     `json:"isNew"`
	IsBestSeller bool     `json:"isBestSeller"`
	Rating       float64  `json:"rating"`
	Notes        []string `json:"notes"`
}

type priceRangeDTO struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

type filtersDTO struct {
	Text            string  `json:"text"`
	Category        string  `json:"category"`
	PriceMin        int64   `json:"priceMin"`
	PriceMax        int64   `json:"priceMax"`
	BestSellersOnly bool    `json:"bestSellersOnly"`
	MinRating       float64 `json:"minRating"`
	Sort            string  `json:"sort"`
}

type listProductsResponse struct {
	Products      []productDTO  `json:"products"`
	Count         int           `json:"count"`
	Filters       filtersDTO    `json:"filters"`
	PriceBounds   priceRangeDTO `json:"priceBounds"`
	ActiveFilters int           `json:"activeFilters"`
}

type productDetailResponse struct {
	Product productDTO   `json:"product"`
	Related []productDTO `json:"related"`
}

type homeResponse struct {
	BestSellers []productDTO `json:"bestSellers"`
	NewArrivals []productDTO `json:"newArrivals"`
}

type reviewDTO struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Rating   int    `json:"rating"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type reviewsResponse struct {
	Reviews []reviewDTO `json:"reviews"`
	Current int         `json:"current"`
	Next    int         `json:"next"`
}

type imageResponse struct {
	URL string `json:"url"`
}

type cartItemDTO struct {
	ID               string      `json:"id"`
	ProductID        string      `json:"productId"`
	Size             string      `json:"size"`
	Quantity         int         `json:"quantity"`
	PriceAtSelection int64       `json:"priceAtSelection"`
	Product          *productDTO `json:"product"`
}

type userDTO struct {
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	Address       *string `json:"address,omitempty"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
}

type navigationDTO struct {
	View         string `json:"view"`
	Rendered     string `json:"rendered"`
	ProductID    string `json:"productId,omitempty"`
	CategoryHint string `json:"categoryHint"`
}

type sessionResponse struct {
	Cart           []cartItemDTO `json:"cart"`
	CartCount      int           `json:"cartCount"`
	TotalCartPrice int64         `json:"totalCartPrice"`
	CheckoutTotal  int64         `json:"checkoutTotal"`
	Wishlist       []string      `json:"wishlist"`
	User           *userDTO      `json:"user"`
	CartPanelOpen  bool          `json:"cartPanelOpen"`
	Navigation     navigationDTO `json:"navigation"`
}

type wishlistToggleResponse struct {
	ProductID  string `json:"productId"`
	Wishlisted bool   `json:"wishlisted"`
}

type deliveryDTO struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Notes    string `json:"notes,omitempty"`
}

type orderItemDTO struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

type orderDTO struct {
	ID       string         `json:"id"`
	PlacedAt time.Time      `json:"placedAt"`
	Status   string         `json:"status"`
	Total    int64          `json:"total"`
	Items    []orderItemDTO `json:"items"`
	Delivery deliveryDTO    `json:"delivery"`
}

type profileResponse struct {
	User          userDTO      `json:"user"`
	Address       string       `json:"address"`
	PaymentMethod string       `json:"paymentMethod"`
	Wishlist      []productDTO `json:"wishlist"`
	Orders        []orderDTO   `json:"orders"`
}

type checkoutResponse struct {
	Step          string        `json:"step"`
	StepNumber    int           `json:"stepNumber"`
	Processing    bool          `json:"processing"`
	Delivery      deliveryDTO   `json:"delivery"`
	PaymentMethod string        `json:"paymentMethod"`
	Items         []cartItemDTO `json:"items"`
	Total         int64         `json:"total"`
	LastOrder     *orderDTO     `json:"lastOrder"`
}

// MAPPERS

func toProductDTO(p domain.Product) productDTO {
	notes := p.Notes
	if notes == nil {
		notes = []string{}
	}

	return productDTO{
		ID:           p.ID,
		Name:         p.Name,
		Brand:        p.Brand,
		Category:     string(p.Category),
		Type:         string(p.FragranceType),
		TypeName:     p.FragranceType.DisplayName(),
		Price:        p.Price,
		Description:  p.Description,
		Image:        p.ImageRef,
		IsNew:        p.IsNew,
		IsBestSeller: p.IsBestSeller,
		Rating:       p.Rating,
		Notes:        notes,
	}
}

func toProductDTOs(products []domain.Product) []productDTO {
	res := make([]productDTO, len(products))
	for i, p := range products {
		res[i] = toProductDTO(p)
	}

	return res
}

func toFiltersDTO(q catalog.Query) filtersDTO {
	return filtersDTO{
		Text:            q.Text,
		Category:        string(q.Category),
		PriceMin:        q.PriceMin,
		PriceMax:        q.PriceMax,
		BestSellersOnly: q.BestSellersOnly,
		MinRating:       q.MinRating,
		Sort:            string(q.Sort),
	}
}

func toListProductsResponse(res *usecase.ListProductsRes) listProductsResponse {
	return listProductsResponse{
		Products:      toProductDTOs(res.Products),
		Count:         len(res.Products),
		Filters:       toFiltersDTO(res.Query),
		PriceBounds:   priceRangeDTO{Min: res.Bounds.Min, Max: res.Bounds.Max},
		ActiveFilters: res.ActiveFilters,
	}
}

func toReviewsResponse(res *usecase.ReviewsRes) reviewsResponse {
	reviews := make([]reviewDTO, len(res.Reviews))
	for i, r := range res.Reviews {
		reviews[i] = reviewDTO{ID: r.ID, Text: r.Text, Rating: r.Rating, Name: r.Name, Location: r.Location}
	}

	return reviewsResponse{Reviews: reviews, Current: res.Current, Next: res.Next}
}

func toCartItemDTOs(lines []usecase.CartLine) []cartItemDTO {
	res := make([]cartItemDTO, len(lines))
	for i, line := range lines {
		res[i] = cartItemDTO{
			ID:               line.Item.ID,
			ProductID:        line.Item.ProductID,
			Size:             string(line.Item.Size),
			Quantity:         line.Item.Quantity,
			PriceAtSelection: line.Item.PriceAtSelection,
		}
		if line.Found {
			p := toProductDTO(line.Product)
			res[i].Product = &p
		}
	}

	return res
}

func toUserDTO(u *domain.User) *userDTO {
	if u == nil {
		return nil
	}

	return &userDTO{
		Email:         u.Email,
		Name:          u.Name,
		Address:       u.Address,
		PaymentMethod: u.PaymentMethod,
	}
}

func toNavigationDTO(st navigation.State) navigationDTO {
	return navigationDTO{
		View:         st.View.String(),
		Rendered:     st.Rendered().String(),
		ProductID:    st.ProductID,
		CategoryHint: string(st.CategoryHint),
	}
}

func toSessionResponse(res *usecase.SessionRes) sessionResponse {
	wishlist := res.Snapshot.Wishlist
	if wishlist == nil {
		wishlist = []string{}
	}

	return sessionResponse{
		Cart:           toCartItemDTOs(res.Lines),
		CartCount:      res.Snapshot.CartCount,
		TotalCartPrice: res.Snapshot.TotalCartPrice,
		CheckoutTotal:  res.Snapshot.CheckoutTotal,
		Wishlist:       wishlist,
		User:           toUserDTO(res.Snapshot.User),
		CartPanelOpen:  res.Snapshot.CartPanelOpen,
		Navigation:     toNavigationDTO(res.Navigation),
	}
}

func toDeliveryDTO(d domain.Delivery) deliveryDTO {
	return deliveryDTO(d)
}

func (d *deliveryDTO) toDomain() *domain.Delivery {
	if d == nil {
		return nil
	}

	delivery := domain.Delivery(*d)
	return &delivery
}

func toOrderDTO(o domain.Order) orderDTO {
	items := make([]orderItemDTO, len(o.Items))
	for i, item := range o.Items {
		items[i] = orderItemDTO{
			ProductID: item.ProductID,
			Name:      item.Name,
			Brand:     item.Brand,
			Size:      string(item.Size),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return orderDTO{
		ID:       o.ID,
		PlacedAt: o.PlacedAt,
		Status:   string(o.Status),
		Total:    o.Total,
		Items:    items,
		Delivery: toDeliveryDTO(o.Delivery),
	}
}

func toOrderDTOs(orders []domain.Order) []orderDTO {
	res := make([]orderDTO, len(orders))
	for i, o := range orders {
		res[i] = toOrderDTO(o)
	}

	return res
}

func toProfileResponse(res *usecase.ProfileRes) profileResponse {
	return profileResponse{
		User:          *toUserDTO(&res.User),
		Address:       res.Address,
		PaymentMethod: res.PaymentMethod,
		Wishlist:      toProductDTOs(res.Wishlist),
		Orders:        toOrderDTOs(res.Orders),
	}
}

func toCheckoutResponse(res *usecase.CheckoutRes) checkoutResponse {
	out := checkoutResponse{
		Step:          res.Step.String(),
		StepNumber:    int(res.Step),
		Processing:    res.Processing,
		Delivery:      toDeliveryDTO(res.Delivery),
		PaymentMethod: res.PaymentMethod,
		Items:         toCartItemDTOs(res.Lines),
		Total:         res.Total,
	}
	if res.LastOrder != nil {
		o := toOrderDTO(*res.LastOrder)
		out.LastOrder = &o
	}

	return out
}
