package dto

import "time"

type CreateInterpretationRequest struct {
	Text      string `json:"text" validate:"required"`
	SectionId uint   `json:"section_id" validate:"required"`
}

type CreateInterpretationResponse struct {
	Id uint `json:"id"`
}

type UpdateInterpretationRequest struct {
	Id   uint
	Text string `json:"text" validate:"required"`
}

type ShowInterpretationResponse struct {
	Id        uint       `json:"id"`
	Text      string     `json:"text"`
	SectionId uint       `json:"section_id"`
	UserId    *uint      `json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
