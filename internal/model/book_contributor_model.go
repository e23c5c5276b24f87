package model

import "time"

type BookContributor struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	UserId    uint      `gorm:"not null;uniqueIndex:idx_book_contributors_user_book"`
	BookId    uint      `gorm:"not null;uniqueIndex:idx_book_contributors_user_book"`
	Role      int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (BookContributor) TableName() string {
	return "book_contributors"
}
