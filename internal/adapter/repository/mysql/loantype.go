package mysql

import (
	"context"

	typeDomain "loanflow/internal/domain/loantype"

	"gorm.io/gorm"
)

type LoanTypeRepository struct{ db *gorm.DB }

func NewLoanTypeRepository(db *gorm.DB) *LoanTypeRepository { return &LoanTypeRepository{db: db} }

func (r *LoanTypeRepository) GetByName(ctx context.Context, name string) (*typeDomain.LoanType, error) {
	var out typeDomain.LoanType
	res := r.db.WithContext(ctx).Where("name = ?", name).First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}
