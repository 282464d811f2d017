package domain

// Review — отзыв покупателя для карусели на странице About
type Review struct {
	ID       string
	Text     string
	Rating   int // 1-5
	Name     string
	Location string
}
