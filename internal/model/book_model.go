package model

import "time"

type Book struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Label     string    `gorm:"type:varchar(256);not null;index"`
	About     string    `gorm:"type:text"`
	UserId    uint      `gorm:"not null;index"`
	IsDeleted bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Book) TableName() string {
	return "books"
}
