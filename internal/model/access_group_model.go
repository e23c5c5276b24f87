package model

import "time"

type AccessGroup struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Kind      string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_access_groups_book_kind"`
	BookId    uint      `gorm:"not null;index;uniqueIndex:idx_access_groups_book_kind"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (AccessGroup) TableName() string {
	return "access_groups"
}

// Join records binding a book's groups to nodes of its tree. One row per
// (node, group); every created node ends with one row per book group.

type BookAccessGroup struct {
	BookId        uint `gorm:"primaryKey"`
	AccessGroupId uint `gorm:"primaryKey"`
}

func (BookAccessGroup) TableName() string {
	return "book_access_groups"
}

type CollectionAccessGroup struct {
	CollectionId  uint `gorm:"primaryKey"`
	AccessGroupId uint `gorm:"primaryKey"`
}

func (CollectionAccessGroup) TableName() string {
	return "collection_access_groups"
}

type SectionAccessGroup struct {
	SectionId     uint `gorm:"primaryKey"`
	AccessGroupId uint `gorm:"primaryKey"`
}

func (SectionAccessGroup) TableName() string {
	return "section_access_groups"
}

type InterpretationAccessGroup struct {
	InterpretationId uint `gorm:"primaryKey"`
	AccessGroupId    uint `gorm:"primaryKey"`
}

func (InterpretationAccessGroup) TableName() string {
	return "interpretation_access_groups"
}
