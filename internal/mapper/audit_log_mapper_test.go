package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"open-law-be/internal/entity"
)

func TestAuditLogMapperDetailsRoundTrip(t *testing.T) {
	m := NewAuditLogMapper()

	original := &entity.AuditLog{
		Id:        1,
		EventType: "BOOK_DELETED",
		Details: map[string]interface{}{
			"entity_kind": "book",
			"comments":    float64(4), // JSON numbers decode as float64
		},
		CreatedAt: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	back := m.ToEntity(m.ToModel(original))
	assert.Equal(t, original, back)
}

func TestAuditLogMapperEmptyDetails(t *testing.T) {
	m := NewAuditLogMapper()

	back := m.ToEntity(m.ToModel(&entity.AuditLog{Id: 2, EventType: "BOOK_CREATED"}))
	assert.Equal(t, "BOOK_CREATED", back.EventType)
	assert.Empty(t, back.Details)
}
