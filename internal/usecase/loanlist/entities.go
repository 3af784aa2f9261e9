package loanlist

import "loanflow/internal/domain/usersnapshot"

// LoanWithUser is one listing row enriched with the applicant snapshot and
// the amortization results. User is nil when the identity service has no
// snapshot for the owner.
type LoanWithUser struct {
	LoanID         string                 `json:"loan_id"`
	Amount         float64                `json:"amount"`
	TermMonths     int                    `json:"loan_term"`
	Email          string                 `json:"email"`
	DNI            string                 `json:"dni"`
	User           *usersnapshot.Snapshot `json:"user,omitempty"`
	LoanTypeName   string                 `json:"loan_type"`
	StatusName     string                 `json:"status"`
	InterestRate   float64                `json:"interest_rate"`
	MonthlyPayment float64                `json:"monthly_payment"`
	Approved       bool                   `json:"approved"`
}

type Page struct {
	Content       []LoanWithUser `json:"content"`
	Page          int            `json:"page"`
	Size          int            `json:"size"`
	TotalElements int64          `json:"total_elements"`
	TotalPages    int            `json:"total_pages"`
}
