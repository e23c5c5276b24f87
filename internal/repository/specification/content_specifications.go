package specification

import "gorm.io/gorm"

type ByCollectionID struct {
	CollectionID uint
}

func (s ByCollectionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("collection_id = ?", s.CollectionID)
}

type ByCollectionIDs struct {
	CollectionIDs []uint
}

func (s ByCollectionIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("collection_id IN ?", s.CollectionIDs)
}

type BySectionID struct {
	SectionID uint
}

func (s BySectionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("section_id = ?", s.SectionID)
}

type BySectionIDs struct {
	SectionIDs []uint
}

func (s BySectionIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("section_id IN ?", s.SectionIDs)
}

type ByInterpretationID struct {
	InterpretationID uint
}

func (s ByInterpretationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("interpretation_id = ?", s.InterpretationID)
}

type ByInterpretationIDs struct {
	InterpretationIDs []uint
}

func (s ByInterpretationIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("interpretation_id IN ?", s.InterpretationIDs)
}

// ByParentCommentID selects direct replies of a comment. Nil selects
// top-level comments of an interpretation.
type ByParentCommentID struct {
	ParentID *uint
}

func (s ByParentCommentID) Apply(db *gorm.DB) *gorm.DB {
	if s.ParentID == nil {
		return db.Where("parent_id IS NULL")
	}
	return db.Where("parent_id = ?", s.ParentID)
}
