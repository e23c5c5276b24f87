package implementation

import (
	"gorm.io/gorm"

	"open-law-be/internal/pkg/apperr"
	"open-law-be/internal/repository/specification"
)

func applySpecifications(db *gorm.DB, specs []specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// storageErr wraps a driver failure as a typed storage error so the error
// handler can classify it. A missing row is not a failure; FindOne callers
// get (nil, nil) before this is reached.
func storageErr(err error, op string) error {
	if err == nil {
		return nil
	}
	return apperr.Storage(err, "%s", op)
}
