package entity

import "time"

type Book struct {
	Id        uint
	Label     string
	About     string
	UserId    uint // owner
	CreatedAt time.Time
	UpdatedAt *time.Time
	IsDeleted bool
}
