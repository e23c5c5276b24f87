package entity

import "time"

// Interpretation text carries no sibling uniqueness constraint: two users
// may submit identical readings of the same section.
type Interpretation struct {
	Id        uint
	Text      string
	SectionId uint
	UserId    *uint // nil for anonymous submissions
	CreatedAt time.Time
	UpdatedAt *time.Time
	IsDeleted bool
}
