package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carsarena/parts-store/internal/core/domain"
)

// UserService defines use-case operations on the user directory.
type UserService interface {
	Register(ctx context.Context, user *domain.User) (*mongo.InsertOneResult, error)
	Get(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, email string, profile domain.Profile) (*mongo.UpdateResult, error)
	// Promote sets the user's role to admin. One-directional: there is no
	// demotion operation.
	Promote(ctx context.Context, id string) (*mongo.UpdateResult, error)
	// RoleOf reads the stored role fresh from the directory. The role gate
	// calls it on every request so revocation takes effect immediately.
	RoleOf(ctx context.Context, email string) (string, error)
}
