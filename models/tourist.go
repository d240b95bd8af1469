package models

type TouristUser struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	Surname    string `json:"surname"`
	Email      string `gorm:"uniqueIndex;not null" json:"email"`
	Password   string `gorm:"not null" json:"-"`
	Telephone  string `json:"telephone"`
	ImgProfile string `json:"img_profile"`
	StateID    int    `gorm:"not null" json:"state_id"`
}

func (TouristUser) TableName() string { return "tourist_users" }

// TouristUserUpdate is a sparse update payload. Zero-valued fields mean
// "leave unchanged", never "clear".
type TouristUserUpdate struct {
	Name       string `json:"new_name"`
	Surname    string `json:"new_surname"`
	Email      string `json:"new_email"`
	ImgProfile string `json:"new_img_profile"`
	StateID    int    `json:"new_state_id"`
	Telephone  string `json:"new_telephone"`
}

func (t *TouristUser) ApplyUpdate(u TouristUserUpdate) {
	if u.Name != "" {
		t.Name = u.Name
	}
	if u.Surname != "" {
		t.Surname = u.Surname
	}
	if u.Email != "" {
		t.Email = u.Email
	}
	if u.ImgProfile != "" {
		t.ImgProfile = u.ImgProfile
	}
	if u.StateID != 0 {
		t.StateID = u.StateID
	}
	if u.Telephone != "" {
		t.Telephone = u.Telephone
	}
}
