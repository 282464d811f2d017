package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/frag-avenue/internal/domain"
)

type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Upsert(ctx context.Context, product *domain.Product, position int) (bool, error)
}

type ReviewRepository interface {
	List(ctx context.Context) ([]domain.Review, error)
	Upsert(ctx context.Context, review *domain.Review, position int) error
}

type ImageRepository interface {
	PresignGet(ctx context.Context, key string) (string, time.Duration, error)
}
