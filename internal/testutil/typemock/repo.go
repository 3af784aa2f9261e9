package typemock

import (
	"context"

	domain "loanflow/internal/domain/loantype"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies loantype.Repository.
type Repo struct {
	GetByNameFn func(ctx context.Context, name string) (*domain.LoanType, error)
}

func (m *Repo) GetByName(ctx context.Context, name string) (*domain.LoanType, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, context.Canceled
}
