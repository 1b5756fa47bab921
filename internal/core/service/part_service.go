package service

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carsarena/parts-store/internal/core/domain"
	"github.com/carsarena/parts-store/internal/core/ports"
)

// PartService implements catalogue operations.
type PartService struct {
	repo ports.PartRepository
	log  zerolog.Logger
}

func NewPartService(repo ports.PartRepository, log zerolog.Logger) *PartService {
	return &PartService{repo: repo, log: log}
}

func (s *PartService) Create(ctx context.Context, part *domain.Part) (*mongo.InsertOneResult, error) {
	res, err := s.repo.Insert(ctx, part)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("name", part.Name).Msg("part created")
	return res, nil
}

func (s *PartService) Get(ctx context.Context, id string) (*domain.Part, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, oid)
}

func (s *PartService) List(ctx context.Context) ([]*domain.Part, error) {
	return s.repo.List(ctx)
}

func (s *PartService) UpdateQuantity(ctx context.Context, id string, availableQuantity int) (*mongo.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateQuantity(ctx, oid, availableQuantity)
}

func (s *PartService) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	res, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("part_id", id).Msg("part deleted")
	return res, nil
}
