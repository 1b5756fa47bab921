package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carsarena/parts-store/internal/core/domain"
)

const collectionSummary = "summary"

type SummaryRepository struct {
	col *mongo.Collection
}

func NewSummaryRepository(db *mongo.Database) *SummaryRepository {
	return &SummaryRepository{col: db.Collection(collectionSummary)}
}

func (r *SummaryRepository) List(ctx context.Context) ([]*domain.SummaryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list summary: %w", err)
	}

	var items []*domain.SummaryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	return items, nil
}
