package entity

import "time"

type AccessGroupKind string

const (
	AccessGroupEditor    AccessGroupKind = "editor"
	AccessGroupModerator AccessGroupKind = "moderator"
)

// AccessGroup is a book-scoped permission bucket. Exactly one editor and one
// moderator group exist per book, created with the book and never mutated.
type AccessGroup struct {
	Id        uint
	Kind      AccessGroupKind
	BookId    uint
	CreatedAt time.Time
}
