package models

// TouristUserLike records a tourist's endorsement of an experience. The
// composite key keeps the pair unique; racing toggles rely on it.
type TouristUserLike struct {
	TouristUserID uint `gorm:"primaryKey;autoIncrement:false" json:"tourist_user_id"`
	ExperienceID  uint `gorm:"primaryKey;autoIncrement:false" json:"experience_id"`
}

func (TouristUserLike) TableName() string { return "tourist_user_likes" }
