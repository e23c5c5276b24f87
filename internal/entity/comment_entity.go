package entity

import "time"

// Comment replies reference their parent by id; threads are traversed by
// repeated parent_id lookup, never as a nested object graph. Every reply
// also keeps its interpretation id so interpretation-level cascades reach
// the whole thread in one pass.
type Comment struct {
	Id               uint
	Text             string
	InterpretationId uint
	ParentId         *uint
	UserId           *uint
	CreatedAt        time.Time
	UpdatedAt        *time.Time
	IsDeleted        bool
}
