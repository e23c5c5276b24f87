package unitofwork

import (
	"context"

	"open-law-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error
	InTransaction() bool

	UserRepository() contract.UserRepository
	BookRepository() contract.BookRepository
	BookVersionRepository() contract.BookVersionRepository
	CollectionRepository() contract.CollectionRepository
	SectionRepository() contract.SectionRepository
	InterpretationRepository() contract.InterpretationRepository
	CommentRepository() contract.CommentRepository
	AccessGroupRepository() contract.AccessGroupRepository
	ContributorRepository() contract.ContributorRepository
	AuditLogRepository() contract.AuditLogRepository
}
