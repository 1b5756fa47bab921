package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carsarena/parts-store/internal/core/domain"
	"github.com/carsarena/parts-store/internal/core/ports"
)

type stubOrderRepo struct {
	orders map[string]*domain.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) Insert(_ context.Context, order *domain.Order) (*mongo.InsertOneResult, error) {
	oid := primitive.NewObjectID()
	cp := *order
	cp.ID = oid.Hex()
	r.orders[cp.ID] = &cp
	return &mongo.InsertOneResult{InsertedID: oid}, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Order, error) {
	order, ok := r.orders[id.Hex()]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *order
	return &cp, nil
}

func (r *stubOrderRepo) ListByEmail(_ context.Context, email string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.orders {
		if o.Email == email {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) List(_ context.Context) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.orders {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status domain.OrderStatus, transactionID string) (*mongo.UpdateResult, error) {
	order, ok := r.orders[id.Hex()]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	order.Status = status
	if transactionID != "" {
		order.TransactionID = transactionID
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	if _, ok := r.orders[id.Hex()]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(r.orders, id.Hex())
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

type stubGateway struct {
	calls    int
	amount   int64
	currency string
	secret   string
	err      error
}

func (g *stubGateway) CreateIntent(_ context.Context, amount int64, currency string) (string, error) {
	g.calls++
	g.amount = amount
	g.currency = currency
	if g.err != nil {
		return "", g.err
	}
	return g.secret, nil
}

type stubIntentStore struct {
	secrets map[string]string
}

func newStubIntentStore() *stubIntentStore {
	return &stubIntentStore{secrets: make(map[string]string)}
}

func (s *stubIntentStore) Lookup(_ context.Context, key string) (string, error) {
	return s.secrets[key], nil
}

func (s *stubIntentStore) Save(_ context.Context, key, clientSecret string) error {
	s.secrets[key] = clientSecret
	return nil
}

func newOrderService(repo *stubOrderRepo, gw *stubGateway) *OrderService {
	return NewOrderService(repo, gw, newStubIntentStore(), "usd", zerolog.Nop())
}

func placeOrder(t *testing.T, svc *OrderService, email string) string {
	t.Helper()
	res, err := svc.Place(context.Background(), &domain.Order{Email: email, Price: 20})
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex()
}

func TestOrderService_PlaceForcesPending(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newOrderService(repo, &stubGateway{secret: "cs_1"})

	res, err := svc.Place(context.Background(), &domain.Order{
		Email:         "a@x.com",
		Price:         20,
		Status:        domain.StatusShipped,
		TransactionID: "forged",
	})
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}

	stored := repo.orders[res.InsertedID.(primitive.ObjectID).Hex()]
	if stored.Status != domain.StatusPending {
		t.Fatalf("expected pending, got %s", stored.Status)
	}
	if stored.TransactionID != "" {
		t.Fatalf("expected empty transaction id, got %q", stored.TransactionID)
	}
}

func TestOrderService_PaymentLifecycle(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newOrderService(repo, &stubGateway{secret: "cs_1"})
	id := placeOrder(t, svc, "a@x.com")

	if _, err := svc.Ship(context.Background(), id); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("shipping an unpaid order should fail, got %v", err)
	}

	if _, err := svc.MarkPaid(context.Background(), id, "tx1"); err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}
	if got := repo.orders[id]; got.Status != domain.StatusPaid || got.TransactionID != "tx1" {
		t.Fatalf("unexpected order after payment: %+v", got)
	}

	if _, err := svc.MarkPaid(context.Background(), id, "tx2"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("double payment should fail, got %v", err)
	}

	if _, err := svc.Ship(context.Background(), id); err != nil {
		t.Fatalf("ship failed: %v", err)
	}
	if got := repo.orders[id]; got.Status != domain.StatusShipped {
		t.Fatalf("expected shipped, got %s", got.Status)
	}

	if _, err := svc.MarkPaid(context.Background(), id, "tx3"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("shipped is terminal, got %v", err)
	}
}

func TestOrderService_MalformedID(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newOrderService(repo, &stubGateway{secret: "cs_1"})

	if _, err := svc.Get(context.Background(), "not-an-objectid"); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := svc.Delete(context.Background(), "$where"); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestOrderService_Owner(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newOrderService(repo, &stubGateway{secret: "cs_1"})
	id := placeOrder(t, svc, "a@x.com")

	owner, err := svc.Owner(context.Background(), id)
	if err != nil {
		t.Fatalf("owner failed: %v", err)
	}
	if owner != "a@x.com" {
		t.Fatalf("unexpected owner: %s", owner)
	}
}

func TestOrderService_CreatePaymentIntent(t *testing.T) {
	gw := &stubGateway{secret: "cs_abc_secret"}
	svc := newOrderService(newStubOrderRepo(), gw)

	secret, err := svc.CreatePaymentIntent(context.Background(), ports.PaymentIntentInput{Price: 20})
	if err != nil {
		t.Fatalf("create intent failed: %v", err)
	}
	if secret != "cs_abc_secret" {
		t.Fatalf("unexpected secret: %s", secret)
	}
	if gw.amount != 2000 || gw.currency != "usd" {
		t.Fatalf("unexpected gateway call: amount=%d currency=%s", gw.amount, gw.currency)
	}
}

func TestOrderService_PaymentIntentReplay(t *testing.T) {
	gw := &stubGateway{secret: "cs_abc_secret"}
	svc := newOrderService(newStubOrderRepo(), gw)

	input := ports.PaymentIntentInput{Price: 20, IdempotencyKey: "key-1"}
	first, err := svc.CreatePaymentIntent(context.Background(), input)
	if err != nil {
		t.Fatalf("create intent failed: %v", err)
	}
	second, err := svc.CreatePaymentIntent(context.Background(), input)
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}

	if first != second {
		t.Fatalf("replay returned a different secret")
	}
	if gw.calls != 1 {
		t.Fatalf("expected a single gateway call, got %d", gw.calls)
	}
}

func TestOrderService_GatewayFailure(t *testing.T) {
	gw := &stubGateway{err: errors.New("card network down")}
	svc := newOrderService(newStubOrderRepo(), gw)

	_, err := svc.CreatePaymentIntent(context.Background(), ports.PaymentIntentInput{Price: 20})
	if !errors.Is(err, domain.ErrPaymentGateway) {
		t.Fatalf("expected ErrPaymentGateway, got %v", err)
	}
}
