package models

import "github.com/lib/pq"

// Discovery kinds, a closed set of four categories.
const (
	KindMonument = 1
	KindMuseum   = 2
	KindNature   = 3
	KindEvent    = 4
)

func ValidKindID(id int) bool {
	return id >= KindMonument && id <= KindEvent
}

// AllKindIDs returns every category id, in order.
func AllKindIDs() []int {
	return []int{KindMonument, KindMuseum, KindNature, KindEvent}
}

type Discovery struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Title          string         `gorm:"uniqueIndex;not null" json:"title"`
	Description    string         `json:"description"`
	ImgPreviewPath string         `json:"img_preview_path"`
	ImgPaths       pq.StringArray `gorm:"type:text[]" json:"img_paths"`
	VideoPaths     pq.StringArray `gorm:"type:text[]" json:"video_paths"`
	// Stored as a PostGIS geography point; written as a WKT literal and
	// read back as EWKB hex. Exposed externally as a plain "lon lat" pair.
	CoordinateGPS string `gorm:"column:coordinate_gps;type:geography(Point,4326)" json:"coordinate_gps"`
	Address       string `json:"address"`
	KindID        int    `gorm:"not null" json:"kind_id"`
	StateID       int    `gorm:"not null" json:"state_id"`
}

func (Discovery) TableName() string { return "discoveries" }

type DiscoveryUpdate struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	ImgPreviewPath string   `json:"img_preview_path"`
	ImgPaths       []string `json:"img_paths"`
	VideoPaths     []string `json:"video_paths"`
	CoordinateGPS  string   `json:"coordinate_gps"`
	Address        string   `json:"address"`
	KindID         int      `json:"kind_id"`
	StateID        int      `json:"state_id"`
}

// ApplyUpdate merges every truthy field of u. The coordinate is expected to
// already be in its stored WKT form when set.
func (d *Discovery) ApplyUpdate(u DiscoveryUpdate) {
	if u.Title != "" {
		d.Title = u.Title
	}
	if u.Description != "" {
		d.Description = u.Description
	}
	if u.ImgPreviewPath != "" {
		d.ImgPreviewPath = u.ImgPreviewPath
	}
	if len(u.ImgPaths) > 0 {
		d.ImgPaths = u.ImgPaths
	}
	if len(u.VideoPaths) > 0 {
		d.VideoPaths = u.VideoPaths
	}
	if u.CoordinateGPS != "" {
		d.CoordinateGPS = u.CoordinateGPS
	}
	if u.Address != "" {
		d.Address = u.Address
	}
	if u.KindID != 0 {
		d.KindID = u.KindID
	}
	if u.StateID != 0 {
		d.StateID = u.StateID
	}
}
