package services

import (
	"github.com/alfon96/askenzo-api/models"
	"gorm.io/gorm"
)

type ExperienceService interface {
	GetByID(id uint) (*models.Experience, error)
	List(cursor *int, limit int) (Page[models.Experience], error)
	Create(e *models.Experience) error
	Update(e *models.Experience) error
	Delete(e *models.Experience) error
}

type experienceService struct {
	db *gorm.DB
}

func NewExperienceService(db *gorm.DB) ExperienceService {
	return &experienceService{db: db}
}

func (s *experienceService) GetByID(id uint) (*models.Experience, error) {
	var e models.Experience
	if err := s.db.First(&e, id).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

// List pages published experiences ordered by id. One extra row beyond limit
// is fetched so the page builder can compute has_more.
func (s *experienceService) List(cursor *int, limit int) (Page[models.Experience], error) {
	var rows []models.Experience
	q := s.db.Where("state_id = ?", models.StateActive).Order("id").Limit(limit + 1)
	if cursor != nil {
		q = q.Offset(*cursor)
	}
	if err := q.Find(&rows).Error; err != nil {
		return Page[models.Experience]{}, translate(err)
	}
	if len(rows) == 0 {
		return Page[models.Experience]{}, ErrNotFound
	}
	return BuildPage(rows, limit, func(e models.Experience) uint { return e.ID }), nil
}

func (s *experienceService) Create(e *models.Experience) error {
	return translate(s.db.Create(e).Error)
}

func (s *experienceService) Update(e *models.Experience) error {
	return translate(s.db.Save(e).Error)
}

func (s *experienceService) Delete(e *models.Experience) error {
	return translate(s.db.Delete(e).Error)
}
