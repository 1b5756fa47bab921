package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carsarena/parts-store/internal/core/domain"
)

// ReviewService covers the public content surface: reviews, customer
// queries, and the landing-page summary.
type ReviewService interface {
	Add(ctx context.Context, review *domain.Review) (*mongo.InsertOneResult, error)
	ListNewestFirst(ctx context.Context) ([]*domain.Review, error)
	AddQuery(ctx context.Context, query *domain.CustomerQuery) (*mongo.InsertOneResult, error)
	Summary(ctx context.Context) ([]*domain.SummaryItem, error)
}
