package converter

import (
	"slices"

	"github.com/DRSN-tech/frag-avenue/internal/domain"
)

// ProductConverter преобразует Product между domain и моделью PostgreSQL.
type ProductConverter struct{}

func NewProductConverter() ProductConverter { return ProductConverter{} }

// ToModel: position задаёт порядок товара в каталоге.
func (ProductConverter) ToModel(entity *domain.Product, position int) *ProductModel {
	notes := slices.Clone(entity.Notes)
	if notes == nil {
		notes = []string{}
	}

	return &ProductModel{
		ID:            entity.ID,
		Position:      position,
		Name:          entity.Name,
		Brand:         entity.Brand,
		Category:      string(entity.Category),
		FragranceType: string(entity.FragranceType),
		Price:         entity.Price,
		Description:   entity.Description,
		ImageRef:      entity.ImageRef,
		IsNew:         entity.IsNew,
		IsBestSeller:  entity.IsBestSeller,
		Rating:        entity.Rating,
		Notes:         notes,
	}
}

func (ProductConverter) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		ID:            model.ID,
		Name:          model.Name,
		Brand:         model.Brand,
		Category:      domain.Category(model.Category),
		FragranceType: domain.FragranceType(model.FragranceType),
		Price:         model.Price,
		Description:   model.Description,
		ImageRef:      model.ImageRef,
		IsNew:         model.IsNew,
		IsBestSeller:  model.IsBestSeller,
		Rating:        model.Rating,
		Notes:         slices.Clone(model.Notes),
	}
}

// ReviewConverter преобразует Review между domain и моделью PostgreSQL.
type ReviewConverter struct{}

func NewReviewConverter() ReviewConverter { return ReviewConverter{} }

func (ReviewConverter) ToModel(entity *domain.Review, position int) *ReviewModel {
	return &ReviewModel{
		ID:       entity.ID,
		Position: position,
		Text:     entity.Text,
		Rating:   entity.Rating,
		Name:     entity.Name,
		Location: entity.Location,
	}
}

func (ReviewConverter) ToEntity(model *ReviewModel) *domain.Review {
	return &domain.Review{
		ID:       model.ID,
		Text:     model.Text,
		Rating:   model.Rating,
		Name:     model.Name,
		Location: model.Location,
	}
}
