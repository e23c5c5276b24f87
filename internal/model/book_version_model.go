package model

import "time"

type BookVersion struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Semver    string    `gorm:"type:varchar(16);not null"`
	BookId    uint      `gorm:"not null;index"`
	IsDeleted bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (BookVersion) TableName() string {
	return "book_versions"
}
