package entity

import "time"

// Collection is a node of a version's tree. The root has no parent and can
// never be a leaf; a leaf owns sections and can never own child collections.
type Collection struct {
	Id        uint
	Label     string
	About     string
	IsRoot    bool
	IsLeaf    bool
	ParentId  *uint // nil only for the root
	VersionId uint
	CreatedAt time.Time
	UpdatedAt *time.Time
	IsDeleted bool
}
