package statusmock

import (
	"context"

	domain "loanflow/internal/domain/loanstatus"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies loanstatus.Repository.
type Repo struct {
	GetByNameFn      func(ctx context.Context, name string) (*domain.LoanStatus, error)
	FindIDsByNamesFn func(ctx context.Context, names []string) ([]uint64, error)
}

func (m *Repo) GetByName(ctx context.Context, name string) (*domain.LoanStatus, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, context.Canceled
}

func (m *Repo) FindIDsByNames(ctx context.Context, names []string) ([]uint64, error) {
	if m.FindIDsByNamesFn != nil {
		return m.FindIDsByNamesFn(ctx, names)
	}
	return nil, nil
}
