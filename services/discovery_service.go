package services

import (
	"github.com/alfon96/askenzo-api/models"
	"gorm.io/gorm"
)

type DiscoveryService interface {
	GetByID(id uint) (*models.Discovery, error)
	List(cursor *int, limit int, category int, all bool) (Page[models.Discovery], error)
	// DistancesFrom computes the geographic distance in kilometers between
	// position (a WKT point) and every stored discovery, in one query.
	DistancesFrom(position string) (map[uint]float64, error)
	Create(d *models.Discovery) error
	Update(d *models.Discovery) error
	Delete(d *models.Discovery) error
}

type discoveryService struct {
	db *gorm.DB
}

func NewDiscoveryService(db *gorm.DB) DiscoveryService {
	return &discoveryService{db: db}
}

func (s *discoveryService) GetByID(id uint) (*models.Discovery, error) {
	var d models.Discovery
	if err := s.db.First(&d, id).Error; err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (s *discoveryService) List(cursor *int, limit int, category int, all bool) (Page[models.Discovery], error) {
	kinds := models.AllKindIDs()
	if !all {
		kinds = []int{category}
	}

	var rows []models.Discovery
	q := s.db.Where("state_id = ? AND kind_id IN ?", models.StateActive, kinds).
		Order("id").Limit(limit + 1)
	if cursor != nil {
		q = q.Offset(*cursor)
	}
	if err := q.Find(&rows).Error; err != nil {
		return Page[models.Discovery]{}, translate(err)
	}
	if len(rows) == 0 {
		return Page[models.Discovery]{}, ErrNotFound
	}
	return BuildPage(rows, limit, func(d models.Discovery) uint { return d.ID }), nil
}

func (s *discoveryService) DistancesFrom(position string) (map[uint]float64, error) {
	var rows []struct {
		ID       uint
		Distance float64
	}
	err := s.db.Raw(
		"SELECT id, ST_Distance(coordinate_gps, ST_GeographyFromText(?)) AS distance FROM discoveries",
		position,
	).Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	// ST_Distance on geography returns meters; callers get kilometers.
	result := make(map[uint]float64, len(rows))
	for _, r := range rows {
		result[r.ID] = r.Distance / 1000
	}
	return result, nil
}

func (s *discoveryService) Create(d *models.Discovery) error {
	return translate(s.db.Create(d).Error)
}

func (s *discoveryService) Update(d *models.Discovery) error {
	return translate(s.db.Save(d).Error)
}

func (s *discoveryService) Delete(d *models.Discovery) error {
	return translate(s.db.Delete(d).Error)
}
