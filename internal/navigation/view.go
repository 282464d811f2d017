// Package navigation хранит текущую страницу витрины и выбранный товар.
package navigation

import "strings"

// View — страница витрины. Набор закрыт, неизвестные имена ведут на ViewHome.
type View int

const (
	ViewHome View = iota
	ViewShop
	ViewProductDetail
	ViewCheckout
	ViewLogin
	ViewProfile
	ViewAbout
)

// productLinkPrefix — префикс глубокой ссылки на товар: "product-<id>"
const productLinkPrefix = "product-"

// wishlistAlias — устаревшая страница избранного, теперь вкладка профиля
const wishlistAlias = "wishlist"

var viewNames = map[View]string{
	ViewHome:          "home",
	ViewShop:          "shop",
	ViewProductDetail: "product-detail",
	ViewCheckout:      "checkout",
	ViewLogin:         "login",
	ViewProfile:       "profile",
	ViewAbout:         "about",
}

func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}

	return viewNames[ViewHome]
}

// ParseView сопоставляет имя страницы. Алиас wishlist ведёт в профиль.
// Второе значение false означает, что имя неизвестно и выбран ViewHome.
func ParseView(name string) (View, bool) {
	if name == wishlistAlias {
		return ViewProfile, true
	}

	for v, n := range viewNames {
		if n == name {
			return v, true
		}
	}

	return ViewHome, false
}

// productLink извлекает id из ссылки вида product-<id>.
func productLink(name string) (string, bool) {
	if name == viewNames[ViewProductDetail] || !strings.HasPrefix(name, productLinkPrefix) {
		return "", false
	}

	id := strings.TrimPrefix(name, productLinkPrefix)
	return id, id != ""
}
