package loantype

import "context"

type Repository interface {
	GetByName(ctx context.Context, name string) (*LoanType, error)
}
