package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tourism/internal/domain"
)

var ErrForbidden = errors.New("forbidden")

type Service struct {
	reviews reviewRepo
	places  placeReader
	audits  auditRecorder
}

func NewService(reviews reviewRepo, places placeReader, audits auditRecorder) *Service {
	return &Service{reviews: reviews, places: places, audits: audits}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}

	ok, err := s.places.Exists(ctx, req.PlaceID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: place %d", domain.ErrNotFound, req.PlaceID)
	}

	rev := &domain.Review{
		PlaceID:     req.PlaceID,
		UserID:      userID,
		Rating:      req.Rating,
		Comment:     req.Comment,
		PublishDate: time.Now().UTC(),
	}
	if err := s.reviews.Create(ctx, rev); err != nil {
		return nil, err
	}

	if s.audits != nil {
		_ = s.audits.Record(ctx, domain.AuditRecord{
			ActorID:  userID,
			Action:   "review_created",
			Entity:   "review",
			EntityID: rev.ID,
		})
	}

	return rev, nil
}

func (s *Service) ListByPlace(ctx context.Context, placeID int64, limit, offset int) ([]domain.Review, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.reviews.ListByPlace(ctx, placeID, limit, offset)
}

// Delete removes a review. Only its author or an admin may do so.
func (s *Service) Delete(ctx context.Context, reviewID, actorID int64, actorRole string) error {
	rev, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if rev.UserID != actorID && actorRole != string(domain.RoleAdmin) {
		return ErrForbidden
	}
	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}

	if s.audits != nil {
		_ = s.audits.Record(ctx, domain.AuditRecord{
			ActorID:  actorID,
			Action:   "review_deleted",
			Entity:   "review",
			EntityID: reviewID,
		})
	}
	return nil
}
