package model

import "time"

type Section struct {
	Id           uint      `gorm:"primaryKey;autoIncrement"`
	Label        string    `gorm:"type:varchar(256);not null"`
	About        string    `gorm:"type:text"`
	CollectionId uint      `gorm:"not null;index"`
	VersionId    uint      `gorm:"not null;index"`
	UserId       *uint     `gorm:"index"`
	IsDeleted    bool      `gorm:"not null;default:false;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Section) TableName() string {
	return "sections"
}
