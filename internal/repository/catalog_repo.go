package repository

import (
	"context"

	"tourism/internal/domain"

	"gorm.io/gorm"
)

type companyModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (companyModel) TableName() string { return "companies" }

type languageModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (languageModel) TableName() string { return "languages" }

type entertainmentTypeModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (entertainmentTypeModel) TableName() string { return "entertainment_types" }

type placeCategoryModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (placeCategoryModel) TableName() string { return "place_categories" }

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, c *domain.Company) error {
	m := companyModel{Name: c.Name}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return mapError(tx.Error)
	}
	c.ID = m.ID
	return nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	var m companyModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, mapError(tx.Error)
	}
	return &domain.Company{ID: m.ID, Name: m.Name}, nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]domain.Company, error) {
	var rows []companyModel
	tx := r.db.WithContext(ctx).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, mapError(tx.Error)
	}
	out := make([]domain.Company, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Company{ID: m.ID, Name: m.Name})
	}
	return out, nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&companyModel{}, id)
	if tx.Error != nil {
		return mapError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type LanguageRepository struct {
	db *gorm.DB
}

func NewLanguageRepository(db *gorm.DB) *LanguageRepository {
	return &LanguageRepository{db: db}
}

func (r *LanguageRepository) Create(ctx context.Context, l *domain.Language) error {
	m := languageModel{Name: l.Name}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return mapError(tx.Error)
	}
	l.ID = m.ID
	return nil
}

func (r *LanguageRepository) List(ctx context.Context) ([]domain.Language, error) {
	var rows []languageModel
	tx := r.db.WithContext(ctx).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, mapError(tx.Error)
	}
	out := make([]domain.Language, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Language{ID: m.ID, Name: m.Name})
	}
	return out, nil
}

func (r *LanguageRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&languageModel{}, id)
	if tx.Error != nil {
		return mapError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type EntertainmentTypeRepository struct {
	db *gorm.DB
}

func NewEntertainmentTypeRepository(db *gorm.DB) *EntertainmentTypeRepository {
	return &EntertainmentTypeRepository{db: db}
}

func (r *EntertainmentTypeRepository) Create(ctx context.Context, e *domain.EntertainmentType) error {
	m := entertainmentTypeModel{Name: e.Name}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return mapError(tx.Error)
	}
	e.ID = m.ID
	return nil
}

func (r *EntertainmentTypeRepository) List(ctx context.Context) ([]domain.EntertainmentType, error) {
	var rows []entertainmentTypeModel
	tx := r.db.WithContext(ctx).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, mapError(tx.Error)
	}
	out := make([]domain.EntertainmentType, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.EntertainmentType{ID: m.ID, Name: m.Name})
	}
	return out, nil
}

func (r *EntertainmentTypeRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&entertainmentTypeModel{}, id)
	if tx.Error != nil {
		return mapError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type PlaceCategoryRepository struct {
	db *gorm.DB
}

func NewPlaceCategoryRepository(db *gorm.DB) *PlaceCategoryRepository {
	return &PlaceCategoryRepository{db: db}
}

func (r *PlaceCategoryRepository) Create(ctx context.Context, pc *domain.PlaceCategory) error {
	m := placeCategoryModel{Name: pc.Name}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return mapError(tx.Error)
	}
	pc.ID = m.ID
	return nil
}

func (r *PlaceCategoryRepository) List(ctx context.Context) ([]domain.PlaceCategory, error) {
	var rows []placeCategoryModel
	tx := r.db.WithContext(ctx).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, mapError(tx.Error)
	}
	out := make([]domain.PlaceCategory, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.PlaceCategory{ID: m.ID, Name: m.Name})
	}
	return out, nil
}

func (r *PlaceCategoryRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&placeCategoryModel{}, id)
	if tx.Error != nil {
		return mapError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
