package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carsarena/parts-store/internal/core/domain"
)

// PaymentIntentInput carries the parameters for creating a payment intent.
type PaymentIntentInput struct {
	Price float64
	// IdempotencyKey, when non-empty, makes replays return the originally
	// issued client secret instead of creating a second intent.
	IdempotencyKey string
}

// OrderService defines use-case operations for orders and payments.
type OrderService interface {
	Place(ctx context.Context, order *domain.Order) (*mongo.InsertOneResult, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	// Owner returns the stored owner email of the order named by id.
	Owner(ctx context.Context, id string) (string, error)
	ListByOwner(ctx context.Context, email string) ([]*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	// MarkPaid transitions pending -> paid and records the transaction id.
	MarkPaid(ctx context.Context, id, transactionID string) (*mongo.UpdateResult, error)
	// Ship transitions paid -> shipped.
	Ship(ctx context.Context, id string) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
	CreatePaymentIntent(ctx context.Context, input PaymentIntentInput) (clientSecret string, err error)
}
