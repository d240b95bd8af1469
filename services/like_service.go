package services

import (
	"github.com/alfon96/askenzo-api/models"
	"gorm.io/gorm"
)

type LikeService interface {
	Get(touristID, experienceID uint) (*models.TouristUserLike, error)
	// ListExperienceIDs returns the ids of every experience the tourist has
	// liked. An empty result is a valid empty list, not an error.
	ListExperienceIDs(touristID uint) ([]uint, error)
	Create(l *models.TouristUserLike) error
	Delete(l *models.TouristUserLike) error
}

type likeService struct {
	db *gorm.DB
}

func NewLikeService(db *gorm.DB) LikeService {
	return &likeService{db: db}
}

func (s *likeService) Get(touristID, experienceID uint) (*models.TouristUserLike, error) {
	var l models.TouristUserLike
	err := s.db.Where("tourist_user_id = ? AND experience_id = ?", touristID, experienceID).
		First(&l).Error
	if err != nil {
		return nil, translate(err)
	}
	return &l, nil
}

func (s *likeService) ListExperienceIDs(touristID uint) ([]uint, error) {
	var ids []uint
	err := s.db.Model(&models.TouristUserLike{}).
		Where("tourist_user_id = ?", touristID).
		Pluck("experience_id", &ids).Error
	if err != nil {
		return nil, translate(err)
	}
	return ids, nil
}

func (s *likeService) Create(l *models.TouristUserLike) error {
	return translate(s.db.Create(l).Error)
}

func (s *likeService) Delete(l *models.TouristUserLike) error {
	return translate(s.db.Delete(l).Error)
}
