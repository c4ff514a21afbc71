package catalog

import (
	"context"
	"fmt"

	"tourism/internal/domain"
	"tourism/internal/pkg/validator"
)

type Service struct {
	places     placeRepo
	drivers    driverRepo
	companies  companyRepo
	languages  languageRepo
	entTypes   entertainmentTypeRepo
	categories placeCategoryRepo
	audits     auditRecorder
}

func NewService(
	places placeRepo,
	drivers driverRepo,
	companies companyRepo,
	languages languageRepo,
	entTypes entertainmentTypeRepo,
	categories placeCategoryRepo,
	audits auditRecorder,
) *Service {
	return &Service{
		places:     places,
		drivers:    drivers,
		companies:  companies,
		languages:  languages,
		entTypes:   entTypes,
		categories: categories,
		audits:     audits,
	}
}

func (s *Service) record(ctx context.Context, actorID int64, action, entity string, entityID int64) {
	if s.audits == nil {
		return
	}
	_ = s.audits.Record(ctx, domain.AuditRecord{
		ActorID:  actorID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
	})
}

// ---- places ----

func (s *Service) CreatePlace(ctx context.Context, actorID int64, req PlaceRequest) (*domain.Place, error) {
	p := &domain.Place{
		Name:                req.Name,
		Location:            req.Location,
		Rating:              req.Rating,
		DefaultPrice:        req.DefaultPrice,
		EntertainmentTypeID: req.EntertainmentTypeID,
		CategoryID:          req.CategoryID,
	}
	if p.Rating == 0 {
		p.Rating = 1
	}
	if fields := validator.Validate(p); fields != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, fields)
	}
	if err := s.places.Create(ctx, p); err != nil {
		return nil, err
	}
	s.record(ctx, actorID, "place_created", "place", p.ID)
	return p, nil
}

func (s *Service) GetPlace(ctx context.Context, id int64) (*domain.Place, error) {
	return s.places.GetByID(ctx, id)
}

func (s *Service) ListPlaces(ctx context.Context, limit, offset int) ([]domain.Place, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.places.List(ctx, limit, offset)
}

func (s *Service) UpdatePlace(ctx context.Context, actorID, id int64, req PlaceRequest) (*domain.Place, error) {
	p, err := s.places.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = req.Name
	p.Location = req.Location
	p.DefaultPrice = req.DefaultPrice
	p.EntertainmentTypeID = req.EntertainmentTypeID
	p.CategoryID = req.CategoryID
	if req.Rating != 0 {
		p.Rating = req.Rating
	}
	if fields := validator.Validate(p); fields != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, fields)
	}
	if err := s.places.Update(ctx, p); err != nil {
		return nil, err
	}
	s.record(ctx, actorID, "place_updated", "place", p.ID)
	return p, nil
}

func (s *Service) DeletePlace(ctx context.Context, actorID, id int64) error {
	if err := s.places.Delete(ctx, id); err != nil {
		return err
	}
	s.record(ctx, actorID, "place_deleted", "place", id)
	return nil
}

// ---- drivers ----

// CreateDriver rejects a second driver with the same name inside one company;
// the original data model treats that pair as a natural key.
func (s *Service) CreateDriver(ctx context.Context, actorID int64, req DriverRequest) (*domain.Driver, error) {
	d := &domain.Driver{
		CompanyID:  req.CompanyID,
		LanguageID: req.LanguageID,
		Name:       req.Name,
		Surname:    req.Surname,
		Age:        req.Age,
		Status:     domain.DriverAvailable,
	}
	if fields := validator.Validate(d); fields != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, fields)
	}

	if _, err := s.companies.GetByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	dup, err := s.drivers.ExistsByNameInCompany(ctx, req.Name, req.CompanyID)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, fmt.Errorf("%w: driver %q already exists in company %d", domain.ErrConflict, req.Name, req.CompanyID)
	}

	if err := s.drivers.Create(ctx, d); err != nil {
		return nil, err
	}
	s.record(ctx, actorID, "driver_created", "driver", d.ID)
	return d, nil
}

func (s *Service) GetDriver(ctx context.Context, id int64) (*domain.Driver, error) {
	return s.drivers.GetByID(ctx, id)
}

func (s *Service) ListDrivers(ctx context.Context, limit, offset int) ([]domain.Driver, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.drivers.List(ctx, limit, offset)
}

func (s *Service) UpdateDriver(ctx context.Context, actorID, id int64, req DriverRequest) (*domain.Driver, error) {
	d, err := s.drivers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d.CompanyID = req.CompanyID
	d.LanguageID = req.LanguageID
	d.Name = req.Name
	d.Surname = req.Surname
	d.Age = req.Age
	if fields := validator.Validate(d); fields != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, fields)
	}
	if err := s.drivers.Update(ctx, d); err != nil {
		return nil, err
	}
	s.record(ctx, actorID, "driver_updated", "driver", d.ID)
	return d, nil
}

func (s *Service) DeleteDriver(ctx context.Context, actorID, id int64) error {
	if err := s.drivers.Delete(ctx, id); err != nil {
		return err
	}
	s.record(ctx, actorID, "driver_deleted", "driver", id)
	return nil
}

// ---- lookup tables ----

func (s *Service) CreateCompany(ctx context.Context, actorID int64, name string) (*domain.Company, error) {
	c := &domain.Company{Name: name}
	if fields := validator.Validate(c); fields != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, fields)
	}
	if err := s.companies.Create(ctx, c); err != nil {
		return nil, err
	}
	s.record(ctx, actorID, "company_created", "company", c.ID)
	return c, nil
}

func (s *Service) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	return s.companies.List(ctx)
}

func (s *Service) DeleteCompany(ctx context.Context, actorID, id int64) error {
	if err := s.companies.Delete(ctx, id); err != nil {
		return err
	}
	s.record(ctx, actorID, "company_deleted", "company", id)
	return nil
}

func (s *Service) CreateLanguage(ctx context.Context, actorID int64, name string) (*domain.Language, error) {
	l := &domain.Language{Name: name}
	if fields := validator.Validate(l); fields != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, fields)
	}
	if err := s.languages.Create(ctx, l); err != nil {
		return nil, err
	}
	s.record(ctx, actorID, "language_created", "language", l.ID)
	return l, nil
}

func (s *Service) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	return s.languages.List(ctx)
}

func (s *Service) DeleteLanguage(ctx context.Context, actorID, id int64) error {
	if err := s.languages.Delete(ctx, id); err != nil {
		return err
	}
	s.record(ctx, actorID, "language_deleted", "language", id)
	return nil
}

func (s *Service) CreateEntertainmentType(ctx context.Context, actorID int64, name string) (*domain.EntertainmentType, error) {
	e := &domain.EntertainmentType{Name: name}
	if fields := validator.Validate(e); fields != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, fields)
	}
	if err := s.entTypes.Create(ctx, e); err != nil {
		return nil, err
	}
	s.record(ctx, actorID, "entertainment_type_created", "entertainment_type", e.ID)
	return e, nil
}

func (s *Service) ListEntertainmentTypes(ctx context.Context) ([]domain.EntertainmentType, error) {
	return s.entTypes.List(ctx)
}

func (s *Service) DeleteEntertainmentType(ctx context.Context, actorID, id int64) error {
	if err := s.entTypes.Delete(ctx, id); err != nil {
		return err
	}
	s.record(ctx, actorID, "entertainment_type_deleted", "entertainment_type", id)
	return nil
}

func (s *Service) CreatePlaceCategory(ctx context.Context, actorID int64, name string) (*domain.PlaceCategory, error) {
	pc := &domain.PlaceCategory{Name: name}
	if fields := validator.Validate(pc); fields != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, fields)
	}
	if err := s.categories.Create(ctx, pc); err != nil {
		return nil, err
	}
	s.record(ctx, actorID, "place_category_created", "place_category", pc.ID)
	return pc, nil
}

func (s *Service) ListPlaceCategories(ctx context.Context) ([]domain.PlaceCategory, error) {
	return s.categories.List(ctx)
}

func (s *Service) DeletePlaceCategory(ctx context.Context, actorID, id int64) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.record(ctx, actorID, "place_category_deleted", "place_category", id)
	return nil
}
