package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carsarena/parts-store/internal/core/domain"
)

const collectionQueries = "query"

type QueryRepository struct {
	col *mongo.Collection
}

func NewQueryRepository(db *mongo.Database) *QueryRepository {
	return &QueryRepository{col: db.Collection(collectionQueries)}
}

func (r *QueryRepository) Insert(ctx context.Context, query *domain.CustomerQuery) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("insert query: %w", err)
	}
	return res, nil
}
