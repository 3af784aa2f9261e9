package decision

import (
	"context"
	"errors"

	"loanflow/internal/domain/errs"
	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/logging"
	"loanflow/internal/domain/uow"

	"gorm.io/gorm"
)

// Decision is the ephemeral command that moves a loan to a new status.
type Decision struct {
	LoanID    string
	Status    string
	Automatic bool
}

// Updater is the only operation allowed to mutate a loan's status. The
// lookup-and-save runs inside one transaction.
type Updater struct {
	uow    uow.UnitOfWork
	logger logging.Logger
}

func NewUpdater(tx uow.UnitOfWork, log logging.Logger) *Updater {
	return &Updater{uow: tx, logger: log}
}

func (u *Updater) Update(ctx context.Context, d Decision) (*loan.Loan, error) {
	u.logger.Trace("updating loan %s to status %s", d.LoanID, d.Status)

	var updated *loan.Loan
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, d.LoanID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return errs.ErrLoanNotFound
		case err != nil:
			return err
		}

		status, err := r.Statuses.GetByName(ctx, d.Status)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return errs.ErrLoanStatusNotFound
		case err != nil:
			return err
		}

		l.StatusID = status.ID
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		updated = l
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err)
	}
	u.logger.Trace("successfully updated loan %s", updated.LoanID)
	return updated, nil
}
