package repository

import (
	"context"
	"time"

	"tourism/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	PlaceID     int64     `gorm:"column:place_id"`
	UserID      int64     `gorm:"column:user_id"`
	Rating      float64   `gorm:"column:rating"`
	Comment     *string   `gorm:"column:comment"`
	PublishDate time.Time `gorm:"column:publish_date"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) *domain.Review {
	var comment string
	if m.Comment != nil {
		comment = *m.Comment
	}
	return &domain.Review{
		ID:          m.ID,
		PlaceID:     m.PlaceID,
		UserID:      m.UserID,
		Rating:      m.Rating,
		Comment:     comment,
		PublishDate: m.PublishDate,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	var comment *string
	if rev.Comment != "" {
		v := rev.Comment
		comment = &v
	}
	m := reviewModel{
		PlaceID:     rev.PlaceID,
		UserID:      rev.UserID,
		Rating:      rev.Rating,
		Comment:     comment,
		PublishDate: rev.PublishDate,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return mapError(tx.Error)
	}
	*rev = *toDomainReview(m)
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var m reviewModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, mapError(tx.Error)
	}
	return toDomainReview(m), nil
}

func (r *ReviewRepository) ListByPlace(ctx context.Context, placeID int64, limit, offset int) ([]domain.Review, error) {
	var rows []reviewModel
	tx := r.db.WithContext(ctx).
		Where("place_id = ?", placeID).
		Order("publish_date DESC").
		Limit(limit).Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, mapError(tx.Error)
	}
	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReview(m))
	}
	return out, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&reviewModel{}, id)
	if tx.Error != nil {
		return mapError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
