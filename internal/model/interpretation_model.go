package model

import "time"

type Interpretation struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Text      string    `gorm:"type:text;not null"`
	SectionId uint      `gorm:"not null;index"`
	UserId    *uint     `gorm:"index"`
	IsDeleted bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Interpretation) TableName() string {
	return "interpretations"
}
