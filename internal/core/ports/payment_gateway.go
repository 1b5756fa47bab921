package ports

import "context"

// PaymentGateway abstracts the external payment processor. CreateIntent
// registers a card payment for the given amount (in the currency's smallest
// unit) and returns the client secret the frontend needs to confirm it.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}

// IntentStore keeps previously issued client secrets keyed by the caller's
// idempotency key, so a replayed request returns the original intent instead
// of charging twice. A lookup miss returns an empty secret and no error.
type IntentStore interface {
	Lookup(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, clientSecret string) error
}
