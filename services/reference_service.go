package services

import (
	"context"
	"fmt"

	"github.com/kendall-kelly/essay-orders-api/models"
	"gorm.io/gorm"
)

// Reference kinds served by ReferenceService.List
const (
	RefCountries       = "countries"
	RefDisciplines     = "disciplines"
	RefAssignmentTypes = "assignment-types"
	RefEducationLevels = "education-levels"
	RefCitationStyles  = "citation-styles"
	RefOrderFormats    = "order-formats"
	RefGenders         = "genders"
	RefDayTimes        = "day-times"
	RefCurrencies      = "currencies"
	RefExtras          = "extras"
	RefServiceTypes    = "service-types"
	RefPageDiscounts   = "page-discounts"
)

// DefaultQuizSize is the number of grammar questions handed to a writer applicant
const DefaultQuizSize = 10

// ReferenceService reads the seeded lookup tables
type ReferenceService struct {
	db *gorm.DB
}

var referenceServiceInstance *ReferenceService

// NewReferenceService creates a reference service backed by db
func NewReferenceService(db *gorm.DB) *ReferenceService {
	return &ReferenceService{db: db}
}

// InitReferenceService creates the reference service instance used by the controllers
func InitReferenceService(db *gorm.DB) *ReferenceService {
	referenceServiceInstance = NewReferenceService(db)
	return referenceServiceInstance
}

// GetReferenceService returns the initialized reference service instance
func GetReferenceService() *ReferenceService {
	return referenceServiceInstance
}

// SetReferenceService sets the reference service instance (primarily for testing)
func SetReferenceService(service *ReferenceService) {
	referenceServiceInstance = service
}

// listAll loads every row of T sorted by order
func listAll[T any](ctx context.Context, db *gorm.DB, order string) ([]T, error) {
	rows := []T{}
	if err := db.WithContext(ctx).Order(order).Find(&rows).Error; err != nil {
		var zero T
		return nil, fmt.Errorf("failed to list %T: %w", zero, err)
	}
	return rows, nil
}

// Countries lists countries by name
func (s *ReferenceService) Countries(ctx context.Context) ([]models.Country, error) {
	return listAll[models.Country](ctx, s.db, "name")
}

// Disciplines lists academic disciplines by name
func (s *ReferenceService) Disciplines(ctx context.Context) ([]models.Discipline, error) {
	return listAll[models.Discipline](ctx, s.db, "name")
}

// AssignmentTypes lists assignment types by name
func (s *ReferenceService) AssignmentTypes(ctx context.Context) ([]models.AssignmentType, error) {
	return listAll[models.AssignmentType](ctx, s.db, "name")
}

// EducationLevels lists education levels in seeded order
func (s *ReferenceService) EducationLevels(ctx context.Context) ([]models.EducationLevel, error) {
	return listAll[models.EducationLevel](ctx, s.db, "id")
}

// CitationStyles lists citation styles by name
func (s *ReferenceService) CitationStyles(ctx context.Context) ([]models.CitationStyle, error) {
	return listAll[models.CitationStyle](ctx, s.db, "name")
}

// OrderFormats lists order formats in seeded order
func (s *ReferenceService) OrderFormats(ctx context.Context) ([]models.OrderFormat, error) {
	return listAll[models.OrderFormat](ctx, s.db, "id")
}

// Genders lists genders in seeded order
func (s *ReferenceService) Genders(ctx context.Context) ([]models.Gender, error) {
	return listAll[models.Gender](ctx, s.db, "id")
}

// DayTimes lists the deadline times of day
func (s *ReferenceService) DayTimes(ctx context.Context) ([]models.DayTime, error) {
	return listAll[models.DayTime](ctx, s.db, "value")
}

// Currencies lists currencies by code
func (s *ReferenceService) Currencies(ctx context.Context) ([]models.Currency, error) {
	return listAll[models.Currency](ctx, s.db, "code")
}

// Extras lists the priced order extras
func (s *ReferenceService) Extras(ctx context.Context) ([]models.Extra, error) {
	return listAll[models.Extra](ctx, s.db, "id")
}

// ServiceTypes lists service types in seeded order
func (s *ReferenceService) ServiceTypes(ctx context.Context) ([]models.ServiceType, error) {
	return listAll[models.ServiceType](ctx, s.db, "id")
}

// PageDiscounts lists page discounts by minimum page count
func (s *ReferenceService) PageDiscounts(ctx context.Context) ([]models.PageDiscount, error) {
	return listAll[models.PageDiscount](ctx, s.db, "min_pages")
}

// GrammarQuiz draws limit random questions. Answers are never serialized.
func (s *ReferenceService) GrammarQuiz(ctx context.Context, limit int) ([]models.GrammarQuestion, error) {
	if limit <= 0 {
		limit = DefaultQuizSize
	}
	questions := []models.GrammarQuestion{}
	if err := s.db.WithContext(ctx).Order("RANDOM()").Limit(limit).Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to draw grammar quiz: %w", err)
	}
	return questions, nil
}

// List returns the reference rows of kind. ok is false for an unknown kind.
func (s *ReferenceService) List(ctx context.Context, kind string) (rows interface{}, ok bool, err error) {
	switch kind {
	case RefCountries:
		rows, err = s.Countries(ctx)
	case RefDisciplines:
		rows, err = s.Disciplines(ctx)
	case RefAssignmentTypes:
		rows, err = s.AssignmentTypes(ctx)
	case RefEducationLevels:
		rows, err = s.EducationLevels(ctx)
	case RefCitationStyles:
		rows, err = s.CitationStyles(ctx)
	case RefOrderFormats:
		rows, err = s.OrderFormats(ctx)
	case RefGenders:
		rows, err = s.Genders(ctx)
	case RefDayTimes:
		rows, err = s.DayTimes(ctx)
	case RefCurrencies:
		rows, err = s.Currencies(ctx)
	case RefExtras:
		rows, err = s.Extras(ctx)
	case RefServiceTypes:
		rows, err = s.ServiceTypes(ctx)
	case RefPageDiscounts:
		rows, err = s.PageDiscounts(ctx)
	default:
		return nil, false, nil
	}
	if err != nil {
		return nil, true, err
	}
	return rows, true, nil
}
