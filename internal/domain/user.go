package domain

// User описывает авторизованного (симулированно) покупателя.
type User struct {
	Email         string
	Name          string
	Address       *string
	PaymentMethod *string
	Wishlist      []string // устаревший снимок, актуальное избранное хранит Store
}

func NewUser(email, name string) *User {
	return &User{
		Email:    email,
		Name:     name,
		Wishlist: []string{},
	}
}

// Clone возвращает глубокую копию пользователя.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}

	c := *u
	if u.Address != nil {
		addr := *u.Address
		c.Address = &addr
	}
	if u.PaymentMethod != nil {
		pm := *u.PaymentMethod
		c.PaymentMethod = &pm
	}
	c.Wishlist = append([]string{}, u.Wishlist...)

	return &c
}
