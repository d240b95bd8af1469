package services

import (
	"github.com/alfon96/askenzo-api/models"
	"gorm.io/gorm"
)

type HostService interface {
	GetByID(id uint) (*models.HostUser, error)
	GetByEmail(email string) (*models.HostUser, error)
	Create(h *models.HostUser) error
	Update(h *models.HostUser) error
	Delete(h *models.HostUser) error
}

type hostService struct {
	db *gorm.DB
}

func NewHostService(db *gorm.DB) HostService {
	return &hostService{db: db}
}

func (s *hostService) GetByID(id uint) (*models.HostUser, error) {
	var h models.HostUser
	if err := s.db.First(&h, id).Error; err != nil {
		return nil, translate(err)
	}
	return &h, nil
}

func (s *hostService) GetByEmail(email string) (*models.HostUser, error) {
	var h models.HostUser
	if err := s.db.Where("email = ?", email).First(&h).Error; err != nil {
		return nil, translate(err)
	}
	return &h, nil
}

func (s *hostService) Create(h *models.HostUser) error {
	return translate(s.db.Create(h).Error)
}

func (s *hostService) Update(h *models.HostUser) error {
	return translate(s.db.Save(h).Error)
}

func (s *hostService) Delete(h *models.HostUser) error {
	return translate(s.db.Delete(h).Error)
}
