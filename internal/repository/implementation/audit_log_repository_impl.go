package implementation

import (
	"context"

	"gorm.io/gorm"

	"open-law-be/internal/entity"
	"open-law-be/internal/mapper"
	"open-law-be/internal/model"
	"open-law-be/internal/repository/contract"
	"open-law-be/internal/repository/scope"
	"open-law-be/internal/repository/specification"
)

type auditLogRepository struct {
	db     *gorm.DB
	mapper *mapper.AuditLogMapper
}

func NewAuditLogRepository(db *gorm.DB) contract.AuditLogRepository {
	return &auditLogRepository{db: db, mapper: mapper.NewAuditLogMapper()}
}

func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storageErr(err, "create audit log")
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

// FindAll returns newest entries first. The log is append-only, so callers
// never want insertion order.
func (r *auditLogRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AuditLog, error) {
	var ms []*model.AuditLog
	query := applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedDesc), specs)
	if err := query.Find(&ms).Error; err != nil {
		return nil, storageErr(err, "list audit logs")
	}
	return r.mapper.ToEntities(ms), nil
}

func (r *auditLogRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.AuditLog{}), specs)
	if err := query.Count(&count).Error; err != nil {
		return 0, storageErr(err, "count audit logs")
	}
	return count, nil
}
