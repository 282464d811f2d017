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

// ReviewRepo реализует репозиторий отзывов поверх PostgreSQL.
type ReviewRepo struct {
	pool *pgxpool.Pool
	conv converter.ReviewConverter
}

func NewReviewRepo(pool *pgxpool.Pool, conv converter.ReviewConverter) *ReviewRepo {
	return &ReviewRepo{pool: pool, conv: conv}
}

func (r *ReviewRepo) List(ctx context.Context) ([]domain.Review, error) {
	query := `
		SELECT id, position, text, rating, name, location
		FROM reviews
		ORDER BY position, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Review, 0)
	for rows.Next() {
		var model converter.ReviewModel
		if err := rows.Scan(
			&model.ID, &model.Position, &model.Text, &model.Rating, &model.Name, &model.Location,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *r.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// Upsert идемпотентно создаёт или обновляет отзыв в транзакции из контекста.
func (r *ReviewRepo) Upsert(ctx context.Context, review *domain.Review, position int) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO reviews (id, position, text, rating, name, location)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id)
		DO UPDATE SET
			position = EXCLUDED.position,
			text = EXCLUDED.text,
			rating = EXCLUDED.rating,
			name = EXCLUDED.name,
			location = EXCLUDED.location
	`

	m := r.conv.ToModel(review, position)
	if _, err := tx.Exec(ctx, query, m.ID, m.Position, m.Text, m.Rating, m.Name, m.Location); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
