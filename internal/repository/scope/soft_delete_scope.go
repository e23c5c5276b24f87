package scope

import "gorm.io/gorm"

// ExcludeDeleted keeps only live rows. Soft deletion is the explicit
// is_deleted flag, so repositories opt in rather than relying on a GORM
// global scope.
func ExcludeDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

// IncludeDeleted is the default behavior but made explicit at call sites
// that intentionally read tombstones (cascade verification, admin tooling).
func IncludeDeleted(db *gorm.DB) *gorm.DB {
	return db
}
