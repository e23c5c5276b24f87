package model

import "time"

// The partial unique index on (version_id, parent_id, label) for live rows
// is created by cmd/migrate; GORM tags cannot express the WHERE clause.
type Collection struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Label     string    `gorm:"type:varchar(256);not null"`
	About     string    `gorm:"type:text"`
	IsRoot    bool      `gorm:"not null;default:false"`
	IsLeaf    bool      `gorm:"not null;default:false"`
	ParentId  *uint     `gorm:"index"`
	VersionId uint      `gorm:"not null;index"`
	IsDeleted bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Collection) TableName() string {
	return "collections"
}
