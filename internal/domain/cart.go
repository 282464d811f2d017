package domain

// Size — объём флакона
type Size string

const (
	Size3ml   Size = "3ml"
	Size5ml   Size = "5ml"
	Size10ml  Size = "10ml"
	Size30ml  Size = "30ml"
	Size50ml  Size = "50ml"
	Size100ml Size = "100ml"
)

// DefaultSize — объём, выбранный на странице товара по умолчанию и при повторном заказе.
const DefaultSize = Size50ml

// MaxQuantity — предельное количество одной позиции корзины
const MaxQuantity = 99

// ValidQuantity сообщает, допустимо ли количество позиции: от 1 до MaxQuantity.
func ValidQuantity(q int) bool {
	return q >= 1 && q <= MaxQuantity
}

// Sizes возвращает все допустимые объёмы в порядке возрастания.
func Sizes() []Size {
	return []Size{Size3ml, Size5ml, Size10ml, Size30ml, Size50ml, Size100ml}
}

func ParseSize(s string) (Size, bool) {
	for _, size := range Sizes() {
		if string(size) == s {
			return size, true
		}
	}

	return "", false
}

// CartItem — позиция корзины. На пару (ProductID, Size) приходится не более одной позиции.
type CartItem struct {
	ID               string
	ProductID        string
	Size             Size
	Quantity         int
	PriceAtSelection int64 // Цена на момент добавления в корзину
}

func NewCartItem(id, productID string, size Size, quantity int, price int64) *CartItem {
	return &CartItem{
		ID:               id,
		ProductID:        productID,
		Size:             size,
		Quantity:         quantity,
		PriceAtSelection: price,
	}
}
