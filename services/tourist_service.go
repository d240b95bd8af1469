package services

import (
	"github.com/alfon96/askenzo-api/models"
	"gorm.io/gorm"
)

type TouristService interface {
	GetByID(id uint) (*models.TouristUser, error)
	GetByEmail(email string) (*models.TouristUser, error)
	Create(t *models.TouristUser) error
	Update(t *models.TouristUser) error
	Delete(t *models.TouristUser) error
}

type touristService struct {
	db *gorm.DB
}

func NewTouristService(db *gorm.DB) TouristService {
	return &touristService{db: db}
}

func (s *touristService) GetByID(id uint) (*models.TouristUser, error) {
	var t models.TouristUser
	if err := s.db.First(&t, id).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (s *touristService) GetByEmail(email string) (*models.TouristUser, error) {
	var t models.TouristUser
	if err := s.db.Where("email = ?", email).First(&t).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (s *touristService) Create(t *models.TouristUser) error {
	return translate(s.db.Create(t).Error)
}

func (s *touristService) Update(t *models.TouristUser) error {
	return translate(s.db.Save(t).Error)
}

func (s *touristService) Delete(t *models.TouristUser) error {
	return translate(s.db.Delete(t).Error)
}
