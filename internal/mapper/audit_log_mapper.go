package mapper

import (
	"encoding/json"

	"open-law-be/internal/entity"
	"open-law-be/internal/model"

	"gorm.io/datatypes"
)

type AuditLogMapper struct{}

func NewAuditLogMapper() *AuditLogMapper {
	return &AuditLogMapper{}
}

func (m *AuditLogMapper) ToEntity(l *model.AuditLog) *entity.AuditLog {
	if l == nil {
		return nil
	}
	details := map[string]interface{}{}
	if len(l.Details) > 0 {
		// Rows written by this service always hold a JSON object.
		_ = json.Unmarshal(l.Details, &details)
	}
	return &entity.AuditLog{
		Id:        l.Id,
		EventType: l.EventType,
		Details:   details,
		CreatedAt: l.CreatedAt,
	}
}

func (m *AuditLogMapper) ToModel(l *entity.AuditLog) *model.AuditLog {
	if l == nil {
		return nil
	}
	var details datatypes.JSON
	if l.Details != nil {
		raw, err := json.Marshal(l.Details)
		if err == nil {
			details = datatypes.JSON(raw)
		}
	}
	return &model.AuditLog{
		Id:        l.Id,
		EventType: l.EventType,
		Details:   details,
		CreatedAt: l.CreatedAt,
	}
}

func (m *AuditLogMapper) ToEntities(logs []*model.AuditLog) []*entity.AuditLog {
	entities := make([]*entity.AuditLog, len(logs))
	for i, l := range logs {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
