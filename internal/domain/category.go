package domain

// Category описывает коллекцию, к которой относится аромат
type Category string

const (
	CategoryAll    Category = "All" // только для фильтра, у продукта не встречается
	CategoryMen    Category = "Men"
	CategoryWomen  Category = "Women"
	CategoryUnisex Category = "Unisex"
)

// ParseCategory возвращает категорию по имени. Пустая строка трактуется как All.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case "", CategoryAll:
		return CategoryAll, true
	case CategoryMen, CategoryWomen, CategoryUnisex:
		return Category(s), true
	default:
		return "", false
	}
}

// IsProductCategory сообщает, может ли категория быть присвоена продукту.
func (c Category) IsProductCategory() bool {
	return c == CategoryMen || c == CategoryWomen || c == CategoryUnisex
}
