package loan

import (
	"time"

	"gorm.io/gorm"
)

type Loan struct {
	ID         uint64         `gorm:"primaryKey;column:id" json:"-"`
	LoanID     string         `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	Amount     float64        `gorm:"type:decimal(18,2)" json:"amount"`
	TermMonths int            `gorm:"column:term_months" json:"term_months"`
	Email      string         `gorm:"size:255" json:"email"`
	DNI        string         `gorm:"column:dni;size:16;index:idx_loans_dni" json:"dni"`
	UserID     string         `gorm:"size:32;index:idx_loans_user" json:"user_id"`
	StatusID   uint64         `gorm:"column:status_id;index:idx_loans_status" json:"status_id"`
	LoanTypeID uint64         `gorm:"column:loan_type_id;index" json:"loan_type_id"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// JoinedRow is the denormalized projection used by the paginated listing.
// InterestRate is a pointer because the loan-type join is a LEFT JOIN.
type JoinedRow struct {
	LoanID       string   `gorm:"column:loan_id"`
	UserID       string   `gorm:"column:user_id"`
	Amount       float64  `gorm:"column:amount"`
	TermMonths   int      `gorm:"column:term_months"`
	Email        string   `gorm:"column:email"`
	DNI          string   `gorm:"column:dni"`
	StatusName   string   `gorm:"column:status_name"`
	LoanTypeName string   `gorm:"column:loan_type_name"`
	InterestRate *float64 `gorm:"column:interest_rate"`
}

// ActiveLoanDetail is the minimal projection of a user's approved loans
// carried inside the credit-analysis message.
type ActiveLoanDetail struct {
	LoanID       string  `gorm:"column:loan_id" json:"idLoan"`
	Amount       float64 `gorm:"column:amount" json:"amount"`
	TermMonths   int     `gorm:"column:term_months" json:"loanTerm"`
	InterestRate float64 `gorm:"column:interest_rate" json:"interestRate"`
}
