package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carsarena/parts-store/internal/core/domain"
)

// PartService defines use-case operations for the parts catalogue.
type PartService interface {
	Create(ctx context.Context, part *domain.Part) (*mongo.InsertOneResult, error)
	Get(ctx context.Context, id string) (*domain.Part, error)
	List(ctx context.Context) ([]*domain.Part, error)
	UpdateQuantity(ctx context.Context, id string, availableQuantity int) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}
