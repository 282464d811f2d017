package usecase

import "context"

type ImagesInfra interface {
	ImageURL(ctx context.Context, key string) (string, error)
}

type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error
}
