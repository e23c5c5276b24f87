package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"open-law-be/internal/entity"
	"open-law-be/internal/mapper"
	"open-law-be/internal/model"
	"open-law-be/internal/repository/contract"
	"open-law-be/internal/repository/specification"
)

type commentRepository struct {
	db     *gorm.DB
	mapper *mapper.CommentMapper
}

func NewCommentRepository(db *gorm.DB) contract.CommentRepository {
	return &commentRepository{db: db, mapper: mapper.NewCommentMapper()}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	m := r.mapper.ToModel(comment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storageErr(err, "create comment")
	}
	*comment = *r.mapper.ToEntity(m)
	return nil
}

func (r *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	m := r.mapper.ToModel(comment)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return storageErr(err, "update comment")
	}
	*comment = *r.mapper.ToEntity(m)
	return nil
}

func (r *commentRepository) SetDeleted(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id IN ?", ids).
		Update("is_deleted", true).Error
	return storageErr(err, "soft delete comments")
}

func (r *commentRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Comment, error) {
	var m model.Comment
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr(err, "find comment")
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *commentRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Comment, error) {
	var ms []*model.Comment
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.Find(&ms).Error; err != nil {
		return nil, storageErr(err, "list comments")
	}
	return r.mapper.ToEntities(ms), nil
}

func (r *commentRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Comment{}), specs)
	if err := query.Count(&count).Error; err != nil {
		return 0, storageErr(err, "count comments")
	}
	return count, nil
}
