package dto

import "time"

type CreateSectionRequest struct {
	Label        string `json:"label" validate:"required,min=1,max=256"`
	About        string `json:"about"`
	CollectionId uint   `json:"collection_id" validate:"required"`
}

type CreateSectionResponse struct {
	Id uint `json:"id"`
}

type UpdateSectionRequest struct {
	Id    uint
	Label *string `json:"label" validate:"omitempty,min=1,max=256"`
	About *string `json:"about"`
}

type ShowSectionResponse struct {
	Id           uint       `json:"id"`
	Label        string     `json:"label"`
	About        string     `json:"about"`
	CollectionId uint       `json:"collection_id"`
	VersionId    uint       `json:"version_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}
