package dto

import "time"

type CreateBookRequest struct {
	Label string `json:"label" validate:"required,min=6,max=256"`
	About string `json:"about"`
}

type ListBooksRequest struct {
	Q      string `query:"q"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

type ListBooksResponse struct {
	Books []*ShowBookResponse `json:"books"`
	Total int64               `json:"total"`
}

type CreateBookResponse struct {
	Id               uint   `json:"id"`
	RootCollectionId uint   `json:"root_collection_id"`
	VersionId        uint   `json:"version_id"`
	Semver           string `json:"semver"`
}

type UpdateBookRequest struct {
	Id    uint
	Label *string `json:"label" validate:"omitempty,min=6,max=256"`
	About *string `json:"about"`
}

type ShowBookResponse struct {
	Id        uint       `json:"id"`
	Label     string     `json:"label"`
	About     string     `json:"about"`
	OwnerId   uint       `json:"owner_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type BookVersionResponse struct {
	Id        uint      `json:"id"`
	Semver    string    `json:"semver"`
	BookId    uint      `json:"book_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ShowBookTreeResponse is the fully expanded latest-version tree, root first.
type ShowBookTreeResponse struct {
	Book    ShowBookResponse    `json:"book"`
	Version BookVersionResponse `json:"version"`
	Root    *CollectionTreeNode `json:"root"`
}

type CollectionTreeNode struct {
	Id       uint                  `json:"id"`
	Label    string                `json:"label"`
	About    string                `json:"about"`
	IsRoot   bool                  `json:"is_root"`
	IsLeaf   bool                  `json:"is_leaf"`
	Children []*CollectionTreeNode `json:"children,omitempty"`
	Sections []ShowSectionResponse `json:"sections,omitempty"`
}
