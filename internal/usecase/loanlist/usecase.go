package loanlist

import (
	"context"

	"loanflow/internal/domain/errs"
	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/loanstatus"
	"loanflow/internal/domain/logging"
	"loanflow/internal/domain/usersnapshot"
	"loanflow/internal/usecase/calculation"
)

// MaxPageSize caps a requested page size; larger values are clamped, not
// rejected.
const MaxPageSize = 20

type Usecase struct {
	loans     loan.Repository
	statuses  loanstatus.Repository
	snapshots usersnapshot.Source
	logger    logging.Logger
}

func NewUsecase(loans loan.Repository, statuses loanstatus.Repository, snaps usersnapshot.Source, log logging.Logger) *Usecase {
	return &Usecase{loans: loans, statuses: statuses, snapshots: snaps, logger: log}
}

// Execute returns one page of loans joined with type and status, enriched
// with applicant snapshots and the amortized monthly payment. filters are
// status names; unresolvable names are dropped silently.
func (u *Usecase) Execute(ctx context.Context, page, size int, filters []string) (*Page, error) {
	if page < 0 {
		return nil, errs.ErrInvalidPage
	}
	if size < 1 {
		return nil, errs.ErrInvalidPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	statusIDs, err := u.resolveStatusIDs(ctx, filters)
	if err != nil {
		return nil, errs.Wrap(err)
	}

	total, err := u.countLoans(ctx, statusIDs)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	rows, err := u.loans.FindJoinedPage(ctx, statusIDs, size, page*size)
	if err != nil {
		return nil, errs.Wrap(err)
	}

	content, err := u.enrich(ctx, rows)
	if err != nil {
		return nil, errs.Wrap(err)
	}

	return &Page{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages(total, size),
	}, nil
}

func (u *Usecase) resolveStatusIDs(ctx context.Context, filters []string) ([]uint64, error) {
	if len(filters) == 0 {
		return nil, nil
	}
	ids, err := u.statuses.FindIDsByNames(ctx, filters)
	if err != nil {
		return nil, err
	}
	u.logger.Trace("resolved %d status ids from %d filter names", len(ids), len(filters))
	return ids, nil
}

func (u *Usecase) countLoans(ctx context.Context, statusIDs []uint64) (int64, error) {
	if len(statusIDs) == 0 {
		return u.loans.CountAll(ctx)
	}
	return u.loans.CountByStatusIDs(ctx, statusIDs)
}

func (u *Usecase) enrich(ctx context.Context, rows []loan.JoinedRow) ([]LoanWithUser, error) {
	content := make([]LoanWithUser, 0, len(rows))
	if len(rows) == 0 {
		return content, nil
	}

	userIDs := distinctUserIDs(rows)
	snaps, err := u.snapshots.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*usersnapshot.Snapshot, len(snaps))
	for i := range snaps {
		byID[snaps[i].UserID] = &snaps[i]
	}

	for _, row := range rows {
		payment, err := calculation.MonthlyPaymentForRow(row)
		if err != nil {
			return nil, err
		}
		var rate float64
		if row.InterestRate != nil {
			rate = *row.InterestRate
		}
		content = append(content, LoanWithUser{
			LoanID:         row.LoanID,
			Amount:         row.Amount,
			TermMonths:     row.TermMonths,
			Email:          row.Email,
			DNI:            row.DNI,
			User:           byID[row.UserID],
			LoanTypeName:   row.LoanTypeName,
			StatusName:     row.StatusName,
			InterestRate:   rate,
			MonthlyPayment: payment,
			Approved:       calculation.IsApprovedRow(row),
		})
	}
	return content, nil
}

func distinctUserIDs(rows []loan.JoinedRow) []string {
	seen := make(map[string]struct{}, len(rows))
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.UserID]; ok {
			continue
		}
		seen[r.UserID] = struct{}{}
		ids = append(ids, r.UserID)
	}
	return ids
}

func totalPages(total int64, size int) int {
	if total == 0 {
		return 0
	}
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return int(pages)
}
