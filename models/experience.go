package models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Experience struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Title          string         `gorm:"uniqueIndex;not null" json:"title"`
	Description    string         `json:"description"`
	DifficultyID   int            `json:"difficulty_id"`
	Price          datatypes.JSON `gorm:"type:jsonb" json:"price"`
	Duration       string         `gorm:"type:time" json:"duration"`
	ImgPreviewPath string         `json:"img_preview_path"`
	ImgPaths       pq.StringArray `gorm:"type:text[]" json:"img_paths"`
	StateID        int            `gorm:"not null" json:"state_id"`
}

func (Experience) TableName() string { return "experiences" }

type ExperienceUpdate struct {
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	DifficultyID   int            `json:"difficulty_id"`
	Price          datatypes.JSON `json:"price"`
	Duration       string         `json:"duration"`
	ImgPreviewPath string         `json:"img_preview_path"`
	ImgPaths       []string       `json:"img_paths"`
	StateID        int            `json:"state_id"`
}

func (e *Experience) ApplyUpdate(u ExperienceUpdate) {
	if u.Title != "" {
		e.Title = u.Title
	}
	if u.Description != "" {
		e.Description = u.Description
	}
	if u.DifficultyID != 0 {
		e.DifficultyID = u.DifficultyID
	}
	if len(u.Price) > 0 {
		e.Price = u.Price
	}
	if u.Duration != "" {
		e.Duration = u.Duration
	}
	if u.ImgPreviewPath != "" {
		e.ImgPreviewPath = u.ImgPreviewPath
	}
	if len(u.ImgPaths) > 0 {
		e.ImgPaths = u.ImgPaths
	}
	if u.StateID != 0 {
		e.StateID = u.StateID
	}
}
