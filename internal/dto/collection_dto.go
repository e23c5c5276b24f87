package dto

import "time"

type CreateCollectionRequest struct {
	Label    string `json:"label" validate:"required,min=1,max=256"`
	About    string `json:"about"`
	BookId   uint   `json:"book_id" validate:"required"`
	ParentId *uint  `json:"parent_id"` // nil attaches under the root
}

type CreateCollectionResponse struct {
	Id     uint `json:"id"`
	IsLeaf bool `json:"is_leaf"`
}

type UpdateCollectionRequest struct {
	Id    uint
	Label *string `json:"label" validate:"omitempty,min=1,max=256"`
	About *string `json:"about"`
}

type ShowCollectionResponse struct {
	Id        uint       `json:"id"`
	Label     string     `json:"label"`
	About     string     `json:"about"`
	IsRoot    bool       `json:"is_root"`
	IsLeaf    bool       `json:"is_leaf"`
	ParentId  *uint      `json:"parent_id"`
	VersionId uint       `json:"version_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
