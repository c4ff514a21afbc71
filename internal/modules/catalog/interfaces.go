package catalog

import (
	"context"

	"tourism/internal/domain"
)

type placeRepo interface {
	Create(ctx context.Context, p *domain.Place) error
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
	List(ctx context.Context, limit, offset int) ([]domain.Place, error)
	Update(ctx context.Context, p *domain.Place) error
	Delete(ctx context.Context, id int64) error
}

type driverRepo interface {
	Create(ctx context.Context, d *domain.Driver) error
	GetByID(ctx context.Context, id int64) (*domain.Driver, error)
	List(ctx context.Context, limit, offset int) ([]domain.Driver, error)
	Update(ctx context.Context, d *domain.Driver) error
	Delete(ctx context.Context, id int64) error
	ExistsByNameInCompany(ctx context.Context, name string, companyID int64) (bool, error)
}

type companyRepo interface {
	Create(ctx context.Context, c *domain.Company) error
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
	Delete(ctx context.Context, id int64) error
}

type languageRepo interface {
	Create(ctx context.Context, l *domain.Language) error
	List(ctx context.Context) ([]domain.Language, error)
	Delete(ctx context.Context, id int64) error
}

type entertainmentTypeRepo interface {
	Create(ctx context.Context, e *domain.EntertainmentType) error
	List(ctx context.Context) ([]domain.EntertainmentType, error)
	Delete(ctx context.Context, id int64) error
}

type placeCategoryRepo interface {
	Create(ctx context.Context, pc *domain.PlaceCategory) error
	List(ctx context.Context) ([]domain.PlaceCategory, error)
	Delete(ctx context.Context, id int64) error
}

type auditRecorder interface {
	Record(ctx context.Context, rec domain.AuditRecord) error
}
