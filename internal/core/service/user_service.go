package service

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carsarena/parts-store/internal/core/domain"
	"github.com/carsarena/parts-store/internal/core/ports"
)

// UserService implements directory operations on user records.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Register inserts a new user record. Role defaults to guest; registration
// never grants admin directly.
func (s *UserService) Register(ctx context.Context, user *domain.User) (*mongo.InsertOneResult, error) {
	if user.Role == "" {
		user.Role = domain.RoleGuest
	}

	res, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", user.Email).Msg("user registered")
	return res, nil
}

func (s *UserService) Get(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) UpdateProfile(ctx context.Context, email string, profile domain.Profile) (*mongo.UpdateResult, error) {
	return s.repo.UpdateProfile(ctx, email, profile)
}

// Promote sets the role of the user named by id to admin.
func (s *UserService) Promote(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	res, err := s.repo.PromoteToAdmin(ctx, oid)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Msg("user promoted to admin")
	return res, nil
}

// RoleOf reads the stored role fresh from the directory. No caching: the
// admin gate depends on this to make revocation effective on the very next
// request.
func (s *UserService) RoleOf(ctx context.Context, email string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// parseObjectID validates a caller-supplied identifier before it is used as
// a lookup key. A malformed id is a client error, never a crash.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}
