package usecase

import (
	"context"

	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
	"github.com/DRSN-tech/frag-avenue/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// CatalogLoader переносит каталог между сидом и PostgreSQL.
type CatalogLoader struct {
	productRepo ProductRepository
	reviewRepo  ReviewRepository
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewCatalogLoader(
	productRepo ProductRepository,
	reviewRepo ReviewRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *CatalogLoader {
	return &CatalogLoader{
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// Seed идемпотентно записывает товары и отзывы в одной транзакции.
// Позиция в срезе сохраняется как порядок витрины.
func (l *CatalogLoader) Seed(ctx context.Context, products []domain.Product, reviews []domain.Review) (err error) {
	const op = "CatalogLoader.Seed"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, l.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				l.logger.Warnf("catalog seed rollback failed: %v", e.Wrap(op, rbErr))
			}
		}
	}()
	ctx = tr.WithTx(ctx, tx.Transaction())

	var changed int
	for i := range products {
		ok, err := l.productRepo.Upsert(ctx, &products[i], i)
		if err != nil {
			return e.Wrap(op+": "+products[i].ID, err)
		}
		if ok {
			changed++
		}
	}

	for i := range reviews {
		if err := l.reviewRepo.Upsert(ctx, &reviews[i], i); err != nil {
			return e.Wrap(op+": "+reviews[i].ID, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}
	l.logger.Infof("catalog seeded: %d of %d products changed, %d reviews", changed, len(products), len(reviews))

	return nil
}

// Load читает каталог из базы. Пустой каталог считается ошибкой.
func (l *CatalogLoader) Load(ctx context.Context) ([]domain.Product, []domain.Review, error) {
	const op = "CatalogLoader.Load"

	products, err := l.productRepo.List(ctx)
	if err != nil {
		return nil, nil, e.Wrap(op, err)
	}
	if len(products) == 0 {
		return nil, nil, e.Wrap(op, e.ErrEmptyCatalog)
	}

	reviews, err := l.reviewRepo.List(ctx)
	if err != nil {
		return nil, nil, e.Wrap(op, err)
	}
	l.logger.Debugf("catalog loaded from database: %d products, %d reviews", len(products), len(reviews))

	return products, reviews, nil
}
