package loanstatus

import "context"

type Repository interface {
	GetByName(ctx context.Context, name string) (*LoanStatus, error)
	// FindIDsByNames resolves status names to ids; unknown names are
	// simply absent from the result, never an error.
	FindIDsByNames(ctx context.Context, names []string) ([]uint64, error)
}
