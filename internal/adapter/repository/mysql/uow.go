package mysql

import (
	"context"

	"loanflow/internal/domain/uow"

	"gorm.io/gorm"
)

// GormUoW is the transaction gateway: every repository handed to fn is
// bound to the same database transaction.
type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Loans:    &LoanRepository{db: tx},
			Statuses: &LoanStatusRepository{db: tx},
		}
		return fn(r)
	})
}
