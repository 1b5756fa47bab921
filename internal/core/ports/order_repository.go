package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carsarena/parts-store/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) (*mongo.InsertOneResult, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	// UpdateStatus sets the status and, when non-empty, the transaction id.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus, transactionID string) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}
