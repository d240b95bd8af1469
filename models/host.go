package models

type HostUser struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"uniqueIndex;not null" json:"email"`
	Password   string `gorm:"not null" json:"-"`
	ImgProfile string `json:"img_profile"`
	StateID    int    `gorm:"not null" json:"state_id"`
}

func (HostUser) TableName() string { return "host_users" }

type HostUserUpdate struct {
	Name       string `json:"new_name"`
	Email      string `json:"new_email"`
	ImgProfile string `json:"new_img_profile"`
	StateID    int    `json:"new_state_id"`
}

func (h *HostUser) ApplyUpdate(u HostUserUpdate) {
	if u.Name != "" {
		h.Name = u.Name
	}
	if u.Email != "" {
		h.Email = u.Email
	}
	if u.ImgProfile != "" {
		h.ImgProfile = u.ImgProfile
	}
	if u.StateID != 0 {
		h.StateID = u.StateID
	}
}
