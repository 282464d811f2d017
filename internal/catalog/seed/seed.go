// Package seed загружает встроенные в бинарник данные каталога и отзывов.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/jimlawless/whereami"
)

//go:embed data/*.json
var files embed.FS

type productModel struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Brand        string   `json:"brand"`
	Category     string   `json:"category"`
	Type         string   `json:"type"`
	Price        int64    `json:"price"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	IsNew        bool     `json:"isNew"`
	IsBestSeller bool     `json:"isBestSeller"`
	Rating       float64  `json:"rating"`
	Notes        []string `json:"notes"`
}

type reviewModel struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Rating   int    `json:"rating"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Products возвращает встроенный каталог.
func Products() ([]domain.Product, error) {
	f, err := files.Open("data/products.json")
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer f.Close()

	return DecodeProducts(f)
}

// Reviews возвращает встроенные отзывы.
func Reviews() ([]domain.Review, error) {
	f, err := files.Open("data/reviews.json")
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer f.Close()

	return DecodeReviews(f)
}

// ProductsFromFile читает каталог из внешнего JSON-файла того же формата.
func ProductsFromFile(path string) ([]domain.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer f.Close()

	return DecodeProducts(f)
}

func DecodeProducts(r io.Reader) ([]domain.Product, error) {
	var models []productModel
	if err := json.NewDecoder(r).Decode(&models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	products := make([]domain.Product, 0, len(models))
	for _, m := range models {
		p, err := toDomainProduct(m)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		products = append(products, p)
	}

	return products, nil
}

func DecodeReviews(r io.Reader) ([]domain.Review, error) {
	var models []reviewModel
	if err := json.NewDecoder(r).Decode(&models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	reviews := make([]domain.Review, 0, len(models))
	for _, m := range models {
		reviews = append(reviews, domain.Review{
			ID:       m.ID,
			Text:     m.Text,
			Rating:   m.Rating,
			Name:     m.Name,
			Location: m.Location,
		})
	}

	return reviews, nil
}

func toDomainProduct(m productModel) (domain.Product, error) {
	category := domain.Category(m.Category)
	if !category.IsProductCategory() {
		return domain.Product{}, fmt.Errorf("product %s: %w: %q", m.ID, e.ErrInvalidCategory, m.Category)
	}

	fragranceType := domain.FragranceType(m.Type)
	if !fragranceType.Valid() {
		return domain.Product{}, fmt.Errorf("product %s: unknown fragrance type %q", m.ID, m.Type)
	}

	if m.Rating < 0 || m.Rating > 5 {
		return domain.Product{}, fmt.Errorf("product %s: %w: %v", m.ID, e.ErrInvalidRating, m.Rating)
	}

	return domain.Product{
		ID:            m.ID,
		Name:          m.Name,
		Brand:         m.Brand,
		Category:      category,
		FragranceType: fragranceType,
		Price:         m.Price,
		Description:   m.Description,
		ImageRef:      m.Image,
		IsNew:         m.IsNew,
		IsBestSeller:  m.IsBestSeller,
		Rating:        m.Rating,
		Notes:         m.Notes,
	}, nil
}
