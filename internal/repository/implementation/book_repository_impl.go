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

type bookRepository struct {
	db     *gorm.DB
	mapper *mapper.BookMapper
}

func NewBookRepository(db *gorm.DB) contract.BookRepository {
	return &bookRepository{db: db, mapper: mapper.NewBookMapper()}
}

func (r *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	m := r.mapper.ToModel(book)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storageErr(err, "create book")
	}
	*book = *r.mapper.ToEntity(m)
	return nil
}

func (r *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	m := r.mapper.ToModel(book)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return storageErr(err, "update book")
	}
	*book = *r.mapper.ToEntity(m)
	return nil
}

func (r *bookRepository) SetDeleted(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("id IN ?", ids).
		Update("is_deleted", true).Error
	return storageErr(err, "soft delete books")
}

func (r *bookRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Book, error) {
	var m model.Book
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr(err, "find book")
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *bookRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Book, error) {
	var ms []*model.Book
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.Find(&ms).Error; err != nil {
		return nil, storageErr(err, "list books")
	}
	return r.mapper.ToEntities(ms), nil
}

func (r *bookRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Book{}), specs)
	if err := query.Count(&count).Error; err != nil {
		return 0, storageErr(err, "count books")
	}
	return count, nil
}
