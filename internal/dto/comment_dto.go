package dto

import "time"

type CreateCommentRequest struct {
	Text             string `json:"text" validate:"required"`
	InterpretationId uint   `json:"interpretation_id" validate:"required"`
	ParentId         *uint  `json:"parent_id"` // nil for a top-level comment
}

type CreateCommentResponse struct {
	Id uint `json:"id"`
}

type UpdateCommentRequest struct {
	Id   uint
	Text string `json:"text" validate:"required"`
}

type ShowCommentResponse struct {
	Id               uint       `json:"id"`
	Text             string     `json:"text"`
	InterpretationId uint       `json:"interpretation_id"`
	ParentId         *uint      `json:"parent_id"`
	UserId           *uint      `json:"user_id"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
}
