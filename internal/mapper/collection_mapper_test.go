package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"open-law-be/internal/entity"
	"open-law-be/internal/model"
)

func TestCollectionMapperRoundTrip(t *testing.T) {
	m := NewCollectionMapper()

	parentID := uint(7)
	updated := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	original := &entity.Collection{
		Id:        42,
		Label:     "General Provisions",
		About:     "Chapter one",
		IsLeaf:    true,
		ParentId:  &parentID,
		VersionId: 3,
		CreatedAt: time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt: &updated,
	}

	back := m.ToEntity(m.ToModel(original))
	assert.Equal(t, original, back)
}

func TestCollectionMapperZeroUpdatedAt(t *testing.T) {
	m := NewCollectionMapper()

	// A row that was never updated carries a zero timestamp in the model
	// and must map to a nil pointer on the entity.
	e := m.ToEntity(&model.Collection{Id: 1, Label: "Root Collection", IsRoot: true, VersionId: 1})
	assert.Nil(t, e.UpdatedAt)
	assert.True(t, e.IsRoot)
}

func TestCollectionMapperNil(t *testing.T) {
	m := NewCollectionMapper()
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
}
