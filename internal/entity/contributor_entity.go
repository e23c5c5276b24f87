package entity

import "time"

type ContributorRole int

const (
	ContributorRoleModerator ContributorRole = 1
	ContributorRoleEditor    ContributorRole = 2
)

func (r ContributorRole) Valid() bool {
	return r == ContributorRoleModerator || r == ContributorRoleEditor
}

// BookContributor grants a user a role on a book. At most one row exists per
// (user, book) pair.
type BookContributor struct {
	Id        uint
	UserId    uint
	BookId    uint
	Role      ContributorRole
	CreatedAt time.Time
}
