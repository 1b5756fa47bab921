package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carsarena/parts-store/internal/core/domain"
)

const collectionParts = "parts"

type PartRepository struct {
	col *mongo.Collection
}

func NewPartRepository(db *mongo.Database) *PartRepository {
	return &PartRepository{col: db.Collection(collectionParts)}
}

func (r *PartRepository) Insert(ctx context.Context, part *domain.Part) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, part)
	if err != nil {
		return nil, fmt.Errorf("insert part: %w", err)
	}
	return res, nil
}

func (r *PartRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Part, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var part domain.Part
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&part); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPartNotFound
		}
		return nil, fmt.Errorf("find part: %w", err)
	}
	return &part, nil
}

func (r *PartRepository) List(ctx context.Context) ([]*domain.Part, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}

	var parts []*domain.Part
	if err := cursor.All(ctx, &parts); err != nil {
		return nil, fmt.Errorf("decode parts: %w", err)
	}
	return parts, nil
}

func (r *PartRepository) UpdateQuantity(ctx context.Context, id primitive.ObjectID, availableQuantity int) (*mongo.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"availableQuantity": availableQuantity}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("update part quantity: %w", err)
	}
	return res, nil
}

func (r *PartRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("delete part: %w", err)
	}
	return res, nil
}
