package loanapp

import (
	"context"
	"errors"

	"loanflow/internal/domain/errs"
	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/loanstatus"
	"loanflow/internal/domain/loantype"
	"loanflow/internal/domain/logging"
	"loanflow/internal/domain/uow"
	"loanflow/pkg/id"

	"gorm.io/gorm"
)

// Usecase orchestrates loan creation: authorization and product-rule
// validation up front, then persistence and conditional
// automatic-underwriting dispatch inside one transaction.
type Usecase struct {
	uow        uow.UnitOfWork
	types      loantype.Repository
	dispatcher *Dispatcher
	logger     logging.Logger
}

// NewUsecase wires the create flow. The loan type is resolved through types
// before any transaction opens.
func NewUsecase(tx uow.UnitOfWork, types loantype.Repository, d *Dispatcher, log logging.Logger) *Usecase {
	return &Usecase{uow: tx, types: types, dispatcher: d, logger: log}
}

func (u *Usecase) Create(ctx context.Context, in CreateLoanInput, caller Caller) (*LoanData, error) {
	if in.DNI != caller.DNI {
		u.logger.Warn("loan application for dni %s rejected: caller dni mismatch", in.DNI)
		return nil, errs.ErrUnauthorized
	}
	u.logger.Trace("starting loan creation flow for dni %s (user %s)", in.DNI, caller.UserID)

	ltype, err := u.types.GetByName(ctx, in.LoanTypeName)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		u.logger.Warn("loan type not found: %s", in.LoanTypeName)
		return nil, errs.ErrLoanTypeNotFound
	case err != nil:
		return nil, errs.Wrap(err)
	}

	if !ltype.InRange(in.Amount) {
		u.logger.Warn("loan amount %.2f is out of range for loan type %s", in.Amount, in.LoanTypeName)
		return nil, errs.ErrAmountOutOfRange
	}

	var data *LoanData
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		status, err := r.Statuses.GetByName(ctx, loanstatus.NamePendingReview)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			u.logger.Error("initial loan status %q not found", loanstatus.NamePendingReview)
			return errs.ErrLoanStatusNotFound
		case err != nil:
			return err
		}

		l := &loan.Loan{
			LoanID:     id.NewID32(),
			Amount:     in.Amount,
			TermMonths: in.TermMonths,
			Email:      in.Email,
			DNI:        in.DNI,
			UserID:     caller.UserID,
			StatusID:   status.ID,
			LoanTypeID: ltype.ID,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		u.logger.Info("loan application %s created for dni %s", l.LoanID, l.DNI)

		data = &LoanData{
			LoanID:     l.LoanID,
			Amount:     l.Amount,
			TermMonths: l.TermMonths,
			Email:      l.Email,
			DNI:        l.DNI,
			Status:     status.Name,
			LoanType:   ltype.Name,
		}
		// A dispatch failure aborts the transaction: the loan row and the
		// credit-analysis message stand or fall together.
		return u.dispatcher.Handle(ctx, data, ltype, caller.UserID)
	})
	if err != nil {
		u.logger.Error("error creating loan application for dni %s: %v", in.DNI, err)
		return nil, errs.Wrap(err)
	}
	return data, nil
}
