package services

import (
	"github.com/alfon96/askenzo-api/models"
	"gorm.io/gorm"
)

type PopupService interface {
	GetByID(id uint) (*models.PopupMsg, error)
	List(cursor *int, limit int) (Page[models.PopupMsg], error)
	Create(p *models.PopupMsg) error
	Update(p *models.PopupMsg) error
	Delete(p *models.PopupMsg) error
}

type popupService struct {
	db *gorm.DB
}

func NewPopupService(db *gorm.DB) PopupService {
	return &popupService{db: db}
}

func (s *popupService) GetByID(id uint) (*models.PopupMsg, error) {
	var p models.PopupMsg
	if err := s.db.First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *popupService) List(cursor *int, limit int) (Page[models.PopupMsg], error) {
	var rows []models.PopupMsg
	q := s.db.Order("id").Limit(limit + 1)
	if cursor != nil {
		q = q.Offset(*cursor)
	}
	if err := q.Find(&rows).Error; err != nil {
		return Page[models.PopupMsg]{}, translate(err)
	}
	if len(rows) == 0 {
		return Page[models.PopupMsg]{}, ErrNotFound
	}
	return BuildPage(rows, limit, func(p models.PopupMsg) uint { return p.ID }), nil
}

func (s *popupService) Create(p *models.PopupMsg) error {
	return translate(s.db.Create(p).Error)
}

func (s *popupService) Update(p *models.PopupMsg) error {
	return translate(s.db.Save(p).Error)
}

func (s *popupService) Delete(p *models.PopupMsg) error {
	return translate(s.db.Delete(p).Error)
}
