package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	Save(ctx context.Context, l *Loan) error

	// FindJoinedPage returns one page of rows joined with type and status.
	// An empty statusIDs slice means no status restriction.
	FindJoinedPage(ctx context.Context, statusIDs []uint64, limit, offset int) ([]JoinedRow, error)
	CountByStatusIDs(ctx context.Context, statusIDs []uint64) (int64, error)
	CountAll(ctx context.Context) (int64, error)

	// FindActiveLoansByUserID returns the user's currently approved loans.
	FindActiveLoansByUserID(ctx context.Context, userID string) ([]ActiveLoanDetail, error)
}
