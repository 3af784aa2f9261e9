package loanmock

import (
	"context"

	domain "loanflow/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies loan.Repository.
// Only fill in the methods a test needs; defaults are benign.
type Repo struct {
	CreateFn                  func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn             func(ctx context.Context, loanID string) (*domain.Loan, error)
	SaveFn                    func(ctx context.Context, l *domain.Loan) error
	FindJoinedPageFn          func(ctx context.Context, statusIDs []uint64, limit, offset int) ([]domain.JoinedRow, error)
	CountByStatusIDsFn        func(ctx context.Context, statusIDs []uint64) (int64, error)
	CountAllFn                func(ctx context.Context) (int64, error)
	FindActiveLoansByUserIDFn func(ctx context.Context, userID string) ([]domain.ActiveLoanDetail, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) FindJoinedPage(ctx context.Context, statusIDs []uint64, limit, offset int) ([]domain.JoinedRow, error) {
	if m.FindJoinedPageFn != nil {
		return m.FindJoinedPageFn(ctx, statusIDs, limit, offset)
	}
	return nil, nil
}

func (m *Repo) CountByStatusIDs(ctx context.Context, statusIDs []uint64) (int64, error) {
	if m.CountByStatusIDsFn != nil {
		return m.CountByStatusIDsFn(ctx, statusIDs)
	}
	return 0, nil
}

func (m *Repo) CountAll(ctx context.Context) (int64, error) {
	if m.CountAllFn != nil {
		return m.CountAllFn(ctx)
	}
	return 0, nil
}

func (m *Repo) FindActiveLoansByUserID(ctx context.Context, userID string) ([]domain.ActiveLoanDetail, error) {
	if m.FindActiveLoansByUserIDFn != nil {
		return m.FindActiveLoansByUserIDFn(ctx, userID)
	}
	return nil, nil
}
