package messaging

import (
	"encoding/json"
	"errors"
	"fmt"

	"loanflow/internal/domain/loan"
)

// NewLoanDetails describes the loan being analyzed inside a credit-analysis
// message.
type NewLoanDetails struct {
	Amount       float64 `json:"amount"`
	LoanTerm     int     `json:"loanTerm"`
	InterestRate float64 `json:"interestRate"`
}

// FinancialProfile is the applicant's income and active-loan picture sent to
// the underwriting process.
type FinancialProfile struct {
	TotalRevenues float64                 `json:"totalRevenues"`
	ActiveLoans   []loan.ActiveLoanDetail `json:"activeLoans"`
}

// CreditAnalysis is the outbound message that requests automatic
// underwriting of a freshly created loan.
type CreditAnalysis struct {
	LoanID              string           `json:"loanId"`
	UserID              string           `json:"userId"`
	Email               string           `json:"email"`
	NewLoanDetails      NewLoanDetails   `json:"newLoanDetails"`
	Status              string           `json:"status"`
	FinancialProfile    FinancialProfile `json:"financialProfile"`
	AutomaticValidation bool             `json:"automaticValidation"`
}

// StatusUpdateEvent is the inbound underwriting verdict
// (automaticValidation=true). CalculationDetails is passed through to the
// notification channel untouched.
type StatusUpdateEvent struct {
	LoanID              string          `json:"idLoan"`
	UserID              string          `json:"userId"`
	Email               string          `json:"email"`
	Status              string          `json:"status"`
	CalculationDetails  json.RawMessage `json:"calculationDetails,omitempty"`
	AutomaticValidation bool            `json:"automaticValidation"`
}

// ManualDecision is the inbound advisor command (automaticValidation=false).
type ManualDecision struct {
	LoanID              string `json:"idLoan"`
	Status              string `json:"status"`
	AutomaticValidation bool   `json:"automaticValidation"`
}

// Notification is the simple status notification sent after a manual
// decision.
type Notification struct {
	LoanID              string `json:"idLoan"`
	Status              string `json:"status"`
	Email               string `json:"email"`
	AutomaticValidation bool   `json:"automaticValidation"`
}

// ApprovedEvent announces an approved loan downstream.
type ApprovedEvent struct {
	LoanID         string  `json:"idLoan"`
	Status         string  `json:"status"`
	AmountApproved float64 `json:"amountApproved"`
	ApprovedAt     string  `json:"approvedAt"`
}

// Inbound is the sum type of messages arriving on the decision queue. The
// automaticValidation boolean selects the concrete shape.
type Inbound interface{ inbound() }

func (StatusUpdateEvent) inbound() {}
func (ManualDecision) inbound()    {}

var ErrMissingDiscriminator = errors.New("messaging: missing automaticValidation discriminator")

// DecodeInbound decodes a decision-queue payload by its discriminator field
// instead of trial parsing.
func DecodeInbound(body []byte) (Inbound, error) {
	var probe struct {
		AutomaticValidation *bool `json:"automaticValidation"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, fmt.Errorf("messaging: decode envelope: %w", err)
	}
	if probe.AutomaticValidation == nil {
		return nil, ErrMissingDiscriminator
	}
	if *probe.AutomaticValidation {
		var ev StatusUpdateEvent
		if err := json.Unmarshal(body, &ev); err != nil {
			return nil, fmt.Errorf("messaging: decode status update event: %w", err)
		}
		return ev, nil
	}
	var d ManualDecision
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, fmt.Errorf("messaging: decode manual decision: %w", err)
	}
	return d, nil
}
