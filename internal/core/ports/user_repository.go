package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carsarena/parts-store/internal/core/domain"
)

// UserRepository defines persistence operations on the user directory.
// Mutations return the raw driver result so handlers can pass it through
// unchanged to the client.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (*mongo.InsertOneResult, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, email string, profile domain.Profile) (*mongo.UpdateResult, error)
	PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
}
