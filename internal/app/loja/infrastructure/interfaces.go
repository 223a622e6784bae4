package infrastructure

import (
	"context"

	"lojamoz/internal/app/loja/entity"
)

type MessagePublisher interface {
	PublishMessage(ctx context.Context, key string, value []byte) error
	Close() error
}

// FakeStoreClient talks to the public Fake Store API that feeds the
// demo catalog sync.
type FakeStoreClient interface {
	FetchProducts(ctx context.Context) ([]entity.ExternalProduct, error)
	FetchCategories(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) bool
}
