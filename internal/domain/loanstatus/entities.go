package loanstatus

// Canonical status names. Operators may define additional review states;
// these three are the ones the core takes decisions on.
const (
	NamePendingReview = "Pending review"
	NameApproved      = "Approved"
	NameRejected      = "Rejected"
)

type LoanStatus struct {
	ID          uint64 `gorm:"primaryKey;column:id" json:"-"`
	Name        string `gorm:"size:64;uniqueIndex:ux_loan_statuses_name" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

func (LoanStatus) TableName() string { return "loan_statuses" }

func IsApproved(name string) bool { return name == NameApproved }
