package specification

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// FieldLike performs a case-insensitive substring match, the "like" search
// the frontend exposes. No relevance ranking.
type FieldLike struct {
	Field string
	Query string
}

func (s FieldLike) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + strings.ToLower(s.Query) + "%"
	return db.Where(fmt.Sprintf("LOWER(%s) LIKE ?", s.Field), pattern)
}
