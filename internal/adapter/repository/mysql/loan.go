package mysql

import (
	"context"

	loanDomain "loanflow/internal/domain/loan"
	"loanflow/internal/domain/loanstatus"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

const joinedPageSelect = `
SELECT
    l.loan_id,
    l.user_id,
    l.amount,
    l.term_months,
    l.email,
    l.dni,
    COALESCE(s.name, 'UNKNOWN') AS status_name,
    COALESCE(t.name, 'UNKNOWN') AS loan_type_name,
    t.interest_rate
FROM loans l
LEFT JOIN loan_types t ON l.loan_type_id = t.id
LEFT JOIN loan_statuses s ON l.status_id = s.id
WHERE l.deleted_at IS NULL`

func (r *LoanRepository) FindJoinedPage(ctx context.Context, statusIDs []uint64, limit, offset int) ([]loanDomain.JoinedRow, error) {
	var rows []loanDomain.JoinedRow
	q := joinedPageSelect
	args := []any{}
	if len(statusIDs) > 0 {
		q += " AND l.status_id IN ?"
		args = append(args, statusIDs)
	}
	q += " ORDER BY l.id LIMIT ? OFFSET ?"
	args = append(args, limit, offset)
	res := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows)
	return rows, res.Error
}

func (r *LoanRepository) CountByStatusIDs(ctx context.Context, statusIDs []uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("status_id IN ?", statusIDs).
		Count(&n)
	return n, res.Error
}

func (r *LoanRepository) CountAll(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).Count(&n)
	return n, res.Error
}

func (r *LoanRepository) FindActiveLoansByUserID(ctx context.Context, userID string) ([]loanDomain.ActiveLoanDetail, error) {
	var out []loanDomain.ActiveLoanDetail
	res := r.db.WithContext(ctx).Raw(`
SELECT
    l.loan_id,
    l.amount,
    l.term_months,
    COALESCE(t.interest_rate, 0) AS interest_rate
FROM loans l
LEFT JOIN loan_types t ON l.loan_type_id = t.id
JOIN loan_statuses s ON l.status_id = s.id
WHERE l.deleted_at IS NULL AND l.user_id = ? AND s.name = ?
ORDER BY l.id`, userID, loanstatus.NameApproved).Scan(&out)
	return out, res.Error
}
