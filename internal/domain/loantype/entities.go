package loantype

import "time"

// LoanType is immutable reference data; amount bounds are inclusive and
// InterestRate is an annual percentage.
type LoanType struct {
	ID                  uint64    `gorm:"primaryKey;column:id" json:"-"`
	Name                string    `gorm:"size:64;uniqueIndex:ux_loan_types_name" json:"name"`
	MinimumAmount       float64   `gorm:"type:decimal(18,2)" json:"minimum_amount"`
	MaximumAmount       float64   `gorm:"type:decimal(18,2)" json:"maximum_amount"`
	InterestRate        float64   `gorm:"type:decimal(6,2)" json:"interest_rate"`
	AutomaticValidation bool      `gorm:"column:automatic_validation" json:"automatic_validation"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"-"`
}

func (LoanType) TableName() string { return "loan_types" }

// InRange reports whether amount lies within the type's bounds, inclusive.
func (t *LoanType) InRange(amount float64) bool {
	return amount >= t.MinimumAmount && amount <= t.MaximumAmount
}
