package loanapp

// CreateLoanInput is the application as submitted by the client.
type CreateLoanInput struct {
	Amount       float64 `json:"amount"`
	TermMonths   int     `json:"loanTerm"`
	Email        string  `json:"email"`
	DNI          string  `json:"dni"`
	LoanTypeName string  `json:"loanType"`
}

// Caller is the authenticated identity, threaded explicitly from the HTTP
// layer instead of living in ambient context values.
type Caller struct {
	UserID string
	DNI    string
}

// LoanData is the created-loan summary returned to the client and handed to
// the automatic-underwriting dispatcher.
type LoanData struct {
	LoanID     string  `json:"loan_id"`
	Amount     float64 `json:"amount"`
	TermMonths int     `json:"loan_term"`
	Email      string  `json:"email"`
	DNI        string  `json:"dni"`
	Status     string  `json:"status"`
	LoanType   string  `json:"loan_type"`
}
