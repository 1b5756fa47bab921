package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carsarena/parts-store/internal/core/domain"
)

// ReviewRepository defines persistence operations for customer reviews.
type ReviewRepository interface {
	Insert(ctx context.Context, review *domain.Review) (*mongo.InsertOneResult, error)
	// ListNewestFirst returns all reviews sorted by millTime descending.
	ListNewestFirst(ctx context.Context) ([]*domain.Review, error)
}

// QueryRepository stores free-form customer contact messages.
type QueryRepository interface {
	Insert(ctx context.Context, query *domain.CustomerQuery) (*mongo.InsertOneResult, error)
}

// SummaryRepository serves the landing-page headline figures.
type SummaryRepository interface {
	List(ctx context.Context) ([]*domain.SummaryItem, error)
}
