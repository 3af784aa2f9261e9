package mysql

import (
	"context"

	statusDomain "loanflow/internal/domain/loanstatus"

	"gorm.io/gorm"
)

type LoanStatusRepository struct{ db *gorm.DB }

func NewLoanStatusRepository(db *gorm.DB) *LoanStatusRepository {
	return &LoanStatusRepository{db: db}
}

func (r *LoanStatusRepository) GetByName(ctx context.Context, name string) (*statusDomain.LoanStatus, error) {
	var out statusDomain.LoanStatus
	res := r.db.WithContext(ctx).Where("name = ?", name).First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *LoanStatusRepository) FindIDsByNames(ctx context.Context, names []string) ([]uint64, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var ids []uint64
	res := r.db.WithContext(ctx).Model(&statusDomain.LoanStatus{}).
		Where("name IN ?", names).
		Pluck("id", &ids)
	return ids, res.Error
}
