package mapper

import "time"

// updatedAtPtr normalizes GORM's zero-value UpdatedAt into the entities'
// optional pointer form.
func updatedAtPtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	out := t
	return &out
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
