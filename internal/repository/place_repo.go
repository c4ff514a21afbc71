package repository

import (
	"context"
	"time"

	"tourism/internal/domain"

	"gorm.io/gorm"
)

type PlaceRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

type placeModel struct {
	ID                  int64     `gorm:"column:id;primaryKey"`
	Name                string    `gorm:"column:name"`
	Location            string    `gorm:"column:location"`
	Rating              float64   `gorm:"column:rating"`
	DefaultPrice        float64   `gorm:"column:default_price"`
	EntertainmentTypeID int64     `gorm:"column:entertainment_type_id"`
	CategoryID          int64     `gorm:"column:category_id"`
	CreatedAt           time.Time `gorm:"column:created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at"`
}

func (placeModel) TableName() string { return "places" }

func toDomainPlace(m placeModel) *domain.Place {
	return &domain.Place{
		ID:                  m.ID,
		Name:                m.Name,
		Location:            m.Location,
		Rating:              m.Rating,
		DefaultPrice:        m.DefaultPrice,
		EntertainmentTypeID: m.EntertainmentTypeID,
		CategoryID:          m.CategoryID,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func toPlaceModel(p *domain.Place) placeModel {
	return placeModel{
		ID:                  p.ID,
		Name:                p.Name,
		Location:            p.Location,
		Rating:              p.Rating,
		DefaultPrice:        p.DefaultPrice,
		EntertainmentTypeID: p.EntertainmentTypeID,
		CategoryID:          p.CategoryID,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func (r *PlaceRepository) Create(ctx context.Context, p *domain.Place) error {
	m := toPlaceModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return mapError(tx.Error)
	}
	*p = *toDomainPlace(m)
	return nil
}

func (r *PlaceRepository) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	var m placeModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, mapError(tx.Error)
	}
	return toDomainPlace(m), nil
}

func (r *PlaceRepository) List(ctx context.Context, limit, offset int) ([]domain.Place, error) {
	var rows []placeModel
	tx := r.db.WithContext(ctx).Order("id").Limit(limit).Offset(offset).Find(&rows)
	if tx.Error != nil {
		return nil, mapError(tx.Error)
	}
	out := make([]domain.Place, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPlace(m))
	}
	return out, nil
}

func (r *PlaceRepository) Update(ctx context.Context, p *domain.Place) error {
	m := toPlaceModel(p)
	tx := r.db.WithContext(ctx).Model(&placeModel{}).Where("id = ?", p.ID).Updates(map[string]any{
		"name":                  m.Name,
		"location":              m.Location,
		"rating":                m.Rating,
		"default_price":         m.DefaultPrice,
		"entertainment_type_id": m.EntertainmentTypeID,
		"category_id":           m.CategoryID,
	})
	if tx.Error != nil {
		return mapError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PlaceRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&placeModel{}, id)
	if tx.Error != nil {
		return mapError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PlaceRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&placeModel{}).Where("id = ?", id).Count(&cnt)
	if tx.Error != nil {
		return false, mapError(tx.Error)
	}
	return cnt > 0, nil
}
