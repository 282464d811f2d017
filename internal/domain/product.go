package domain

// FragranceType — концентрация аромата
type FragranceType string

const (
	FragranceEDP     FragranceType = "EDP"
	FragranceExtrait FragranceType = "Extrait"
	FragranceCologne FragranceType = "Cologne"
)

// DisplayName возвращает название концентрации для витрины.
func (t FragranceType) DisplayName() string {
	switch t {
	case FragranceEDP:
		return "Eau de Parfum"
	case FragranceExtrait:
		return "Extrait de Parfum"
	case FragranceCologne:
		return "Cologne"
	default:
		return string(t)
	}
}

func (t FragranceType) Valid() bool {
	return t == FragranceEDP || t == FragranceExtrait || t == FragranceCologne
}

// Product описывает аромат каталога. После загрузки каталога не изменяется.
type Product struct {
	ID            string
	Name          string
	Brand         string
	Category      Category
	FragranceType FragranceType
	Price         int64 // Цена в целых единицах валюты (৳)
	Description   string
	ImageRef      string
	IsNew         bool
	IsBestSeller  bool
	Rating        float64
	Notes         []string
}

// Clone возвращает копию продукта с собственным срезом нот.
func (p Product) Clone() Product {
	if p.Notes != nil {
		notes := make([]string, len(p.Notes))
		copy(notes, p.Notes)
		p.Notes = notes
	}

	return p
}
