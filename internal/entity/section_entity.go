package entity

import "time"

type Section struct {
	Id           uint
	Label        string
	About        string
	CollectionId uint
	VersionId    uint
	UserId       *uint
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	IsDeleted    bool
}
