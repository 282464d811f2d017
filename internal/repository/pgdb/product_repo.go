package pgdb

import (
	"context"

	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/DRSN-tech/frag-avenue/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров каталога поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// List возвращает весь каталог в порядке витрины.
func (p *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, position, name, brand, category, fragrance_type, price,
		       description, image_ref, is_new, is_best_seller, rating, notes,
		       created_at, updated_at
		FROM products
		ORDER BY position, id
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Product, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.Position, &model.Name, &model.Brand, &model.Category,
			&model.FragranceType, &model.Price, &model.Description, &model.ImageRef,
			&model.IsNew, &model.IsBestSeller, &model.Rating, &model.Notes,
			&model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *p.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// Upsert идемпотентно создаёт или обновляет товар по id в транзакции из контекста.
// Запись обновляется только при фактическом изменении полей.
// Возвращает true, если строка была вставлена или изменена.
func (p *ProductRepo) Upsert(ctx context.Context, product *domain.Product, position int) (bool, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO products (id, position, name, brand, category, fragrance_type, price,
		                      description, image_ref, is_new, is_best_seller, rating, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id)
		DO UPDATE SET
			position = EXCLUDED.position,
			name = EXCLUDED.name,
			brand = EXCLUDED.brand,
			category = EXCLUDED.category,
			fragrance_type = EXCLUDED.fragrance_type,
			price = EXCLUDED.price,
			description = EXCLUDED.description,
			image_ref = EXCLUDED.image_ref,
			is_new = EXCLUDED.is_new,
			is_best_seller = EXCLUDED.is_best_seller,
			rating = EXCLUDED.rating,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		WHERE
			(products.position, products.name, products.brand, products.category,
			 products.fragrance_type, products.price, products.description, products.image_ref,
			 products.is_new, products.is_best_seller, products.rating, products.notes)
			IS DISTINCT FROM
			(EXCLUDED.position, EXCLUDED.name, EXCLUDED.brand, EXCLUDED.category,
			 EXCLUDED.fragrance_type, EXCLUDED.price, EXCLUDED.description, EXCLUDED.image_ref,
			 EXCLUDED.is_new, EXCLUDED.is_best_seller, EXCLUDED.rating, EXCLUDED.notes)
	`

	m := p.conv.ToModel(product, position)
	tag, err := tx.Exec(ctx, query,
		m.ID, m.Position, m.Name, m.Brand, m.Category, m.FragranceType, m.Price,
		m.Description, m.ImageRef, m.IsNew, m.IsBestSeller, m.Rating, m.Notes,
	)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return tag.RowsAffected() > 0, nil
}
