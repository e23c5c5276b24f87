package model

import "time"

type Comment struct {
	Id               uint      `gorm:"primaryKey;autoIncrement"`
	Text             string    `gorm:"type:text;not null"`
	InterpretationId uint      `gorm:"not null;index"`
	ParentId         *uint     `gorm:"index"`
	UserId           *uint     `gorm:"index"`
	IsDeleted        bool      `gorm:"not null;default:false;index"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (Comment) TableName() string {
	return "comments"
}
