package handlers

import (
	"github.com/alfon96/askenzo-api/models"
	"github.com/alfon96/askenzo-api/services"
)

// In-memory stands-in for the gorm-backed services. Records are kept in
// insertion order so pagination behaves like an id-ordered table scan.

type fakeTouristService struct {
	nextID   uint
	tourists []models.TouristUser
}

func (f *fakeTouristService) GetByID(id uint) (*models.TouristUser, error) {
	for _, t := range f.tourists {
		if t.ID == id {
			out := t
			return &out, nil
		}
	}
	return nil, services.ErrNotFound
}

func (f *fakeTouristService) GetByEmail(email string) (*models.TouristUser, error) {
	for _, t := range f.tourists {
		if t.Email == email {
			out := t
			return &out, nil
		}
	}
	return nil, services.ErrNotFound
}

func (f *fakeTouristService) Create(t *models.TouristUser) error {
	for _, existing := range f.tourists {
		if existing.Email == t.Email {
			return services.ErrDuplicateValue
		}
	}
	f.nextID++
	t.ID = f.nextID
	f.tourists = append(f.tourists, *t)
	return nil
}

func (f *fakeTouristService) Update(t *models.TouristUser) error {
	for i, existing := range f.tourists {
		if existing.ID == t.ID {
			f.tourists[i] = *t
			return nil
		}
	}
	return services.ErrNotFound
}

func (f *fakeTouristService) Delete(t *models.TouristUser) error {
	for i, existing := range f.tourists {
		if existing.ID == t.ID {
			f.tourists = append(f.tourists[:i], f.tourists[i+1:]...)
			return nil
		}
	}
	return services.ErrNotFound
}

type fakeHostService struct {
	nextID uint
	hosts  []models.HostUser
}

func (f *fakeHostService) GetByID(id uint) (*models.HostUser, error) {
	for _, h := range f.hosts {
		if h.ID == id {
			out := h
			return &out, nil
		}
	}
	return nil, services.ErrNotFound
}

func (f *fakeHostService) GetByEmail(email string) (*models.HostUser, error) {
	for _, h := range f.hosts {
		if h.Email == email {
			out := h
			return &out, nil
		}
	}
	return nil, services.ErrNotFound
}

func (f *fakeHostService) Create(h *models.HostUser) error {
	for _, existing := range f.hosts {
		if existing.Email == h.Email {
			return services.ErrDuplicateValue
		}
	}
	f.nextID++
	h.ID = f.nextID
	f.hosts = append(f.hosts, *h)
	return nil
}

func (f *fakeHostService) Update(h *models.HostUser) error {
	for i, existing := range f.hosts {
		if existing.ID == h.ID {
			f.hosts[i] = *h
			return nil
		}
	}
	return services.ErrNotFound
}

func (f *fakeHostService) Delete(h *models.HostUser) error {
	for i, existing := range f.hosts {
		if existing.ID == h.ID {
			f.hosts = append(f.hosts[:i], f.hosts[i+1:]...)
			return nil
		}
	}
	return services.ErrNotFound
}

type fakeExperienceService struct {
	nextID      uint
	experiences []models.Experience
}

func (f *fakeExperienceService) GetByID(id uint) (*models.Experience, error) {
	for _, e := range f.experiences {
		if e.ID == id {
			out := e
			return &out, nil
		}
	}
	return nil, services.ErrNotFound
}

func (f *fakeExperienceService) List(cursor *int, limit int) (services.Page[models.Experience], error) {
	var rows []models.Experience
	for _, e := range f.experiences {
		if e.StateID == models.StateActive {
			rows = append(rows, e)
		}
	}
	if cursor != nil {
		if *cursor >= len(rows) {
			rows = nil
		} else {
			rows = rows[*cursor:]
		}
	}
	if len(rows) > limit+1 {
		rows = rows[:limit+1]
	}
	if len(rows) == 0 {
		return services.Page[models.Experience]{}, services.ErrNotFound
	}
	return services.BuildPage(rows, limit, func(e models.Experience) uint { return e.ID }), nil
}

func (f *fakeExperienceService) Create(e *models.Experience) error {
	for _, existing := range f.experiences {
		if existing.Title == e.Title {
			return services.ErrDuplicateValue
		}
	}
	f.nextID++
	e.ID = f.nextID
	f.experiences = append(f.experiences, *e)
	return nil
}

func (f *fakeExperienceService) Update(e *models.Experience) error {
	for i, existing := range f.experiences {
		if existing.ID == e.ID {
			f.experiences[i] = *e
			return nil
		}
	}
	return services.ErrNotFound
}

func (f *fakeExperienceService) Delete(e *models.Experience) error {
	for i, existing := range f.experiences {
		if existing.ID == e.ID {
			f.experiences = append(f.experiences[:i], f.experiences[i+1:]...)
			return nil
		}
	}
	return services.ErrNotFound
}

type fakeDiscoveryService struct {
	nextID      uint
	discoveries []models.Discovery
	distances   map[uint]float64
}

func (f *fakeDiscoveryService) GetByID(id uint) (*models.Discovery, error) {
	for _, d := range f.discoveries {
		if d.ID == id {
			out := d
			return &out, nil
		}
	}
	return nil, services.ErrNotFound
}

func (f *fakeDiscoveryService) List(cursor *int, limit int, category int, all bool) (services.Page[models.Discovery], error) {
	var rows []models.Discovery
	for _, d := range f.discoveries {
		if d.StateID != models.StateActive {
			continue
		}
		if !all && d.KindID != category {
			continue
		}
		rows = append(rows, d)
	}
	if cursor != nil {
		if *cursor >= len(rows) {
			rows = nil
		} else {
			rows = rows[*cursor:]
		}
	}
	if len(rows) > limit+1 {
		rows = rows[:limit+1]
	}
	if len(rows) == 0 {
		return services.Page[models.Discovery]{}, services.ErrNotFound
	}
	return services.BuildPage(rows, limit, func(d models.Discovery) uint { return d.ID }), nil
}

func (f *fakeDiscoveryService) DistancesFrom(string) (map[uint]float64, error) {
	if len(f.distances) == 0 {
		return nil, services.ErrNotFound
	}
	return f.distances, nil
}

func (f *fakeDiscoveryService) Create(d *models.Discovery) error {
	for _, existing := range f.discoveries {
		if existing.Title == d.Title {
			return services.ErrDuplicateValue
		}
	}
	f.nextID++
	d.ID = f.nextID
	f.discoveries = append(f.discoveries, *d)
	return nil
}

func (f *fakeDiscoveryService) Update(d *models.Discovery) error {
	for i, existing := range f.discoveries {
		if existing.ID == d.ID {
			f.discoveries[i] = *d
			return nil
		}
	}
	return services.ErrNotFound
}

func (f *fakeDiscoveryService) Delete(d *models.Discovery) error {
	for i, existing := range f.discoveries {
		if existing.ID == d.ID {
			f.discoveries = append(f.discoveries[:i], f.discoveries[i+1:]...)
			return nil
		}
	}
	return services.ErrNotFound
}

type fakeLikeService struct {
	likes []models.TouristUserLike
	// createErr simulates the composite-key conflict a racing toggle hits.
	createErr error
}

func (f *fakeLikeService) Get(touristID, experienceID uint) (*models.TouristUserLike, error) {
	for _, l := range f.likes {
		if l.TouristUserID == touristID && l.ExperienceID == experienceID {
			out := l
			return &out, nil
		}
	}
	return nil, services.ErrNotFound
}

func (f *fakeLikeService) ListExperienceIDs(touristID uint) ([]uint, error) {
	var ids []uint
	for _, l := range f.likes {
		if l.TouristUserID == touristID {
			ids = append(ids, l.ExperienceID)
		}
	}
	return ids, nil
}

func (f *fakeLikeService) Create(l *models.TouristUserLike) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.likes {
		if existing.TouristUserID == l.TouristUserID && existing.ExperienceID == l.ExperienceID {
			return services.ErrDuplicateValue
		}
	}
	f.likes = append(f.likes, *l)
	return nil
}

func (f *fakeLikeService) Delete(l *models.TouristUserLike) error {
	for i, existing := range f.likes {
		if existing.TouristUserID == l.TouristUserID && existing.ExperienceID == l.ExperienceID {
			f.likes = append(f.likes[:i], f.likes[i+1:]...)
			return nil
		}
	}
	return services.ErrNotFound
}
