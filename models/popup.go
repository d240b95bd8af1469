package models

type PopupMsg struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Text string `gorm:"uniqueIndex;not null" json:"text"`
}

func (PopupMsg) TableName() string { return "popup_msg" }
