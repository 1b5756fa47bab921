package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carsarena/parts-store/internal/core/domain"
	"github.com/carsarena/parts-store/internal/core/ports"
)

// ReviewService covers the public content surface: reviews, customer
// queries, and the landing-page summary.
type ReviewService struct {
	reviews   ports.ReviewRepository
	queries   ports.QueryRepository
	summaries ports.SummaryRepository
	log       zerolog.Logger
}

func NewReviewService(
	reviews ports.ReviewRepository,
	queries ports.QueryRepository,
	summaries ports.SummaryRepository,
	log zerolog.Logger,
) *ReviewService {
	return &ReviewService{
		reviews:   reviews,
		queries:   queries,
		summaries: summaries,
		log:       log,
	}
}

// Add stores a review, stamping millTime server-side so the listing sort
// key cannot be forged by the client.
func (s *ReviewService) Add(ctx context.Context, review *domain.Review) (*mongo.InsertOneResult, error) {
	review.MillTime = time.Now().UnixMilli()

	res, err := s.reviews.Insert(ctx, review)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", review.Email).Float64("rating", review.Rating).Msg("review added")
	return res, nil
}

func (s *ReviewService) ListNewestFirst(ctx context.Context) ([]*domain.Review, error) {
	return s.reviews.ListNewestFirst(ctx)
}

func (s *ReviewService) AddQuery(ctx context.Context, query *domain.CustomerQuery) (*mongo.InsertOneResult, error) {
	return s.queries.Insert(ctx, query)
}

func (s *ReviewService) Summary(ctx context.Context) ([]*domain.SummaryItem, error) {
	return s.summaries.List(ctx)
}
