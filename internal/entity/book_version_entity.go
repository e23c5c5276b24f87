package entity

import "time"

type BookVersion struct {
	Id        uint
	Semver    string
	BookId    uint
	CreatedAt time.Time
	IsDeleted bool
}
