// Package calculation holds the pure amortization math used by the loan
// listing: the standard fixed-rate annuity payment plus the per-row helpers.
package calculation

import (
	"math"

	"loanflow/internal/domain/errs"
	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/loanstatus"
)

// MonthlyPayment returns the constant monthly installment for a loan of the
// given amount over termMonths at annualRatePercent (e.g. 12 for 12% p.a.),
// rounded half-up to 2 decimal places. A zero rate degrades to straight
// division.
func MonthlyPayment(amount, annualRatePercent float64, termMonths int) (float64, error) {
	if termMonths <= 0 {
		return 0, errs.ErrInvalidTerm
	}
	monthlyRate := annualRatePercent / 100 / 12
	if monthlyRate == 0 {
		return roundHalfUp(amount / float64(termMonths)), nil
	}
	pow := math.Pow(1+monthlyRate, float64(termMonths))
	return roundHalfUp(amount * monthlyRate * pow / (pow - 1)), nil
}

// MonthlyPaymentForRow applies MonthlyPayment to a joined listing row. The
// rate comes from a LEFT JOIN and may be absent.
func MonthlyPaymentForRow(row loan.JoinedRow) (float64, error) {
	if row.InterestRate == nil {
		return 0, errs.ErrLoanDataIncomplete
	}
	return MonthlyPayment(row.Amount, *row.InterestRate, row.TermMonths)
}

// IsApprovedRow reports whether the row's resolved status marks the loan as
// approved.
func IsApprovedRow(row loan.JoinedRow) bool {
	return loanstatus.IsApproved(row.StatusName)
}

// roundHalfUp rounds to 2 decimals, ties away from zero toward +inf for the
// non-negative amounts handled here.
func roundHalfUp(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
