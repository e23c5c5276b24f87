package dto

import "time"

type AddContributorRequest struct {
	BookId   uint
	Username string `json:"username" validate:"required"`
	Role     int    `json:"role" validate:"required,oneof=1 2"`
}

type AddContributorResponse struct {
	Id uint `json:"id"`
}

type UpdateContributorRequest struct {
	BookId uint
	UserId uint `json:"user_id" validate:"required"`
	Role   int  `json:"role" validate:"required,oneof=1 2"`
}

type RemoveContributorRequest struct {
	BookId uint
	UserId uint `json:"user_id" validate:"required"`
}

type ShowContributorResponse struct {
	Id        uint      `json:"id"`
	UserId    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Role      int       `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
