package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carsarena/parts-store/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*mongo.InsertOneResult, error) {
	if _, ok := r.users[user.Email]; ok {
		return nil, domain.ErrUserExists
	}
	oid := primitive.NewObjectID()
	cp := *user
	cp.ID = oid.Hex()
	r.users[cp.Email] = &cp
	return &mongo.InsertOneResult{InsertedID: oid}, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, email string, profile domain.Profile) (*mongo.UpdateResult, error) {
	user, ok := r.users[email]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	user.Education = profile.Education
	user.City = profile.City
	user.Phone = profile.Phone
	user.LinkedIn = profile.LinkedIn
	user.Address = profile.Address
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *stubUserRepo) PromoteToAdmin(_ context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	for _, u := range r.users {
		if u.ID == id.Hex() {
			u.Role = domain.RoleAdmin
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func TestUserService_RegisterDefaultsToGuest(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), &domain.User{Email: "a@x.com"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if repo.users["a@x.com"].Role != domain.RoleGuest {
		t.Fatalf("expected guest role, got %q", repo.users["a@x.com"].Role)
	}
}

func TestUserService_RegisterCannotSelfGrantAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), &domain.User{Email: "a@x.com", Role: domain.RoleGuest}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	role, err := svc.RoleOf(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("role lookup failed: %v", err)
	}
	if role == domain.RoleAdmin {
		t.Fatal("registration must not grant admin")
	}
}

func TestUserService_RegisterDuplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), &domain.User{Email: "a@x.com"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), &domain.User{Email: "a@x.com"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Promote(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	res, err := svc.Register(context.Background(), &domain.User{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	id := res.InsertedID.(primitive.ObjectID).Hex()
	if _, err := svc.Promote(context.Background(), id); err != nil {
		t.Fatalf("promote failed: %v", err)
	}

	role, err := svc.RoleOf(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("role lookup failed: %v", err)
	}
	if role != domain.RoleAdmin {
		t.Fatalf("expected admin, got %q", role)
	}
}

func TestUserService_UpdateProfileIdempotent(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), &domain.User{Email: "a@x.com", Name: "Alice"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	profile := domain.Profile{
		Education: "BSc",
		City:      "Dhaka",
		Phone:     "555-0101",
		LinkedIn:  "linkedin.com/in/alice",
		Address:   "12 Main St",
	}

	if _, err := svc.UpdateProfile(context.Background(), "a@x.com", profile); err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	first := *repo.users["a@x.com"]

	if _, err := svc.UpdateProfile(context.Background(), "a@x.com", profile); err != nil {
		t.Fatalf("repeated update failed: %v", err)
	}
	second := *repo.users["a@x.com"]

	if first != second {
		t.Fatalf("repeated identical update changed stored state:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	if second.Name != "Alice" || second.Role != domain.RoleGuest {
		t.Fatalf("fields outside the profile subset were touched: %+v", second)
	}
	if second.City != "Dhaka" || second.Address != "12 Main St" {
		t.Fatalf("profile fields not applied: %+v", second)
	}
}

func TestUserService_PromoteMalformedID(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Promote(context.Background(), "not-an-objectid"); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestUserService_RoleOfUnknownUser(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.RoleOf(context.Background(), "ghost@x.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
