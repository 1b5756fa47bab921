package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carsarena/parts-store/internal/core/domain"
)

// PartRepository defines persistence operations for the parts catalogue.
type PartRepository interface {
	Insert(ctx context.Context, part *domain.Part) (*mongo.InsertOneResult, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Part, error)
	List(ctx context.Context) ([]*domain.Part, error)
	UpdateQuantity(ctx context.Context, id primitive.ObjectID, availableQuantity int) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}
