package loanapp

import (
	"context"
	"sync"

	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/loantype"
	"loanflow/internal/domain/logging"
	"loanflow/internal/domain/messaging"
	"loanflow/internal/domain/usersnapshot"
)

// Dispatcher sends a freshly created loan to the external underwriting
// process when its loan type opts into automatic validation.
type Dispatcher struct {
	loans     loan.Repository
	snapshots usersnapshot.Source
	sender    messaging.LoanSender
	logger    logging.Logger
}

func NewDispatcher(loans loan.Repository, snaps usersnapshot.Source, sender messaging.LoanSender, log logging.Logger) *Dispatcher {
	return &Dispatcher{loans: loans, snapshots: snaps, sender: sender, logger: log}
}

// Handle is a no-op for loan types without automatic validation. Otherwise
// it gathers the applicant's active loans and income snapshot concurrently
// and publishes a credit-analysis message.
func (d *Dispatcher) Handle(ctx context.Context, data *LoanData, ltype *loantype.LoanType, userID string) error {
	if !ltype.AutomaticValidation {
		d.logger.Trace("loan type %s has no automatic validation for loan %s, flow complete", ltype.Name, data.LoanID)
		return nil
	}
	d.logger.Trace("preparing credit analysis message for loan %s", data.LoanID)

	var (
		wg       sync.WaitGroup
		active   []loan.ActiveLoanDetail
		snap     *usersnapshot.Snapshot
		loansErr error
		snapErr  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		active, loansErr = d.loans.FindActiveLoansByUserID(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		snap, snapErr = d.snapshots.FindByID(ctx, userID)
	}()
	wg.Wait()
	if loansErr != nil {
		return loansErr
	}
	if snapErr != nil {
		return snapErr
	}
	if active == nil {
		active = []loan.ActiveLoanDetail{}
	}

	msg := messaging.CreditAnalysis{
		LoanID: data.LoanID,
		UserID: userID,
		Email:  data.Email,
		NewLoanDetails: messaging.NewLoanDetails{
			Amount:       data.Amount,
			LoanTerm:     data.TermMonths,
			InterestRate: ltype.InterestRate,
		},
		Status: data.Status,
		FinancialProfile: messaging.FinancialProfile{
			TotalRevenues: snap.BaseSalary,
			ActiveLoans:   active,
		},
		AutomaticValidation: true,
	}
	if _, err := d.sender.SendCreditAnalysis(ctx, msg); err != nil {
		return err
	}
	d.logger.Info("loan %s sent for automatic analysis", data.LoanID)
	return nil
}
