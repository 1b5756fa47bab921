package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carsarena/parts-store/internal/core/domain"
	"github.com/carsarena/parts-store/internal/core/ports"
)

// OrderService implements order placement, the payment lifecycle, and the
// pending -> paid -> shipped state machine.
type OrderService struct {
	repo     ports.OrderRepository
	gateway  ports.PaymentGateway
	intents  ports.IntentStore
	currency string
	log      zerolog.Logger
}

func NewOrderService(
	repo ports.OrderRepository,
	gateway ports.PaymentGateway,
	intents ports.IntentStore,
	currency string,
	log zerolog.Logger,
) *OrderService {
	if currency == "" {
		currency = "usd"
	}
	return &OrderService{
		repo:     repo,
		gateway:  gateway,
		intents:  intents,
		currency: currency,
		log:      log,
	}
}

// Place inserts a new order. Status is forced to pending regardless of what
// the caller sent; the only way forward is through MarkPaid and Ship.
func (s *OrderService) Place(ctx context.Context, order *domain.Order) (*mongo.InsertOneResult, error) {
	order.Status = domain.StatusPending
	order.TransactionID = ""

	res, err := s.repo.Insert(ctx, order)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", order.Email).Float64("price", order.Price).Msg("order placed")
	return res, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, oid)
}

// Owner returns the stored owner email of the order named by id. Used by
// the ownership guard's record-lookup resolver.
func (s *OrderService) Owner(ctx context.Context, id string) (string, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return order.Email, nil
}

func (s *OrderService) ListByOwner(ctx context.Context, email string) ([]*domain.Order, error) {
	return s.repo.ListByEmail(ctx, email)
}

func (s *OrderService) List(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

// MarkPaid transitions an order from pending to paid and records the
// transaction id reported by the payment confirmation.
func (s *OrderService) MarkPaid(ctx context.Context, id, transactionID string) (*mongo.UpdateResult, error) {
	return s.transition(ctx, id, domain.StatusPaid, transactionID)
}

// Ship transitions an order from paid to shipped.
func (s *OrderService) Ship(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	return s.transition(ctx, id, domain.StatusShipped, "")
}

func (s *OrderService) transition(ctx context.Context, id string, next domain.OrderStatus, transactionID string) (*mongo.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	order, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, order.Status, next)
	}

	res, err := s.repo.UpdateStatus(ctx, oid, next, transactionID)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("order_id", id).
		Str("status", string(next)).
		Msg("order status updated")

	return res, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, oid)
}

// CreatePaymentIntent registers a card payment with the gateway for
// price * 100 of the configured currency's smallest unit. When the caller
// supplies an idempotency key, a replay within the store's TTL returns the
// originally issued client secret without touching the gateway again.
func (s *OrderService) CreatePaymentIntent(ctx context.Context, input ports.PaymentIntentInput) (string, error) {
	if input.IdempotencyKey != "" {
		secret, err := s.intents.Lookup(ctx, input.IdempotencyKey)
		if err != nil {
			s.log.Warn().Err(err).Msg("intent store lookup failed, creating fresh intent")
		} else if secret != "" {
			s.log.Debug().Str("idempotency_key", input.IdempotencyKey).Msg("payment intent replayed")
			return secret, nil
		}
	}

	amount := int64(math.Round(input.Price * 100))
	secret, err := s.gateway.CreateIntent(ctx, amount, s.currency)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPaymentGateway, err)
	}

	if input.IdempotencyKey != "" {
		if err := s.intents.Save(ctx, input.IdempotencyKey, secret); err != nil {
			s.log.Warn().Err(err).Msg("failed to record payment intent")
		}
	}

	s.log.Info().Int64("amount", amount).Str("currency", s.currency).Msg("payment intent created")
	return secret, nil
}
