package repository

import (
	"context"
	"time"

	"tourism/internal/domain"

	"gorm.io/gorm"
)

type DriverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

type driverModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	CompanyID  int64     `gorm:"column:company_id"`
	LanguageID int64     `gorm:"column:language_id"`
	Name       string    `gorm:"column:name"`
	Surname    string    `gorm:"column:surname"`
	Age        int       `gorm:"column:age"`
	Status     string    `gorm:"column:status"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (driverModel) TableName() string { return "drivers" }

func toDomainDriver(m driverModel) *domain.Driver {
	return &domain.Driver{
		ID:         m.ID,
		CompanyID:  m.CompanyID,
		LanguageID: m.LanguageID,
		Name:       m.Name,
		Surname:    m.Surname,
		Age:        m.Age,
		Status:     domain.DriverStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toDriverModel(d *domain.Driver) driverModel {
	return driverModel{
		ID:         d.ID,
		CompanyID:  d.CompanyID,
		LanguageID: d.LanguageID,
		Name:       d.Name,
		Surname:    d.Surname,
		Age:        d.Age,
		Status:     string(d.Status),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func (r *DriverRepository) Create(ctx context.Context, d *domain.Driver) error {
	m := toDriverModel(d)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return mapError(tx.Error)
	}
	*d = *toDomainDriver(m)
	return nil
}

func (r *DriverRepository) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	var m driverModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, mapError(tx.Error)
	}
	return toDomainDriver(m), nil
}

func (r *DriverRepository) List(ctx context.Context, limit, offset int) ([]domain.Driver, error) {
	var rows []driverModel
	tx := r.db.WithContext(ctx).Order("id").Limit(limit).Offset(offset).Find(&rows)
	if tx.Error != nil {
		return nil, mapError(tx.Error)
	}
	out := make([]domain.Driver, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainDriver(m))
	}
	return out, nil
}

func (r *DriverRepository) Update(ctx context.Context, d *domain.Driver) error {
	m := toDriverModel(d)
	tx := r.db.WithContext(ctx).Model(&driverModel{}).Where("id = ?", d.ID).Updates(map[string]any{
		"company_id":  m.CompanyID,
		"language_id": m.LanguageID,
		"name":        m.Name,
		"surname":     m.Surname,
		"age":         m.Age,
	})
	if tx.Error != nil {
		return mapError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DriverRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&driverModel{}, id)
	if tx.Error != nil {
		return mapError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DriverRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&driverModel{}).Where("id = ?", id).Count(&cnt)
	if tx.Error != nil {
		return false, mapError(tx.Error)
	}
	return cnt > 0, nil
}

func (r *DriverRepository) ExistsByNameInCompany(ctx context.Context, name string, companyID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&driverModel{}).
		Where("name = ? AND company_id = ?", name, companyID).
		Count(&cnt)
	if tx.Error != nil {
		return false, mapError(tx.Error)
	}
	return cnt > 0, nil
}
