package uow

import (
	"context"

	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/loanstatus"
)

type Repos struct {
	Loans    loan.Repository
	Statuses loanstatus.Repository
}

// UnitOfWork executes fn atomically; every repository inside fn is bound to
// the same transaction.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
