package specification

import "gorm.io/gorm"

// ByParentID selects siblings: children of one collection node. A nil
// parent matches only the version root.
type ByParentID struct {
	ParentID *uint
}

func (s ByParentID) Apply(db *gorm.DB) *gorm.DB {
	if s.ParentID == nil {
		return db.Where("parent_id IS NULL")
	}
	return db.Where("parent_id = ?", s.ParentID)
}

// ByParentIDs selects children of a set of nodes, used by the cascade walk.
type ByParentIDs struct {
	ParentIDs []uint
}

func (s ByParentIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("parent_id IN ?", s.ParentIDs)
}

// ByVersionID restricts tree queries to one book version
type ByVersionID struct {
	VersionID uint
}

func (s ByVersionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("version_id = ?", s.VersionID)
}

// IsRoot selects a version's root node
type IsRoot struct{}

func (s IsRoot) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_root = ?", true)
}
