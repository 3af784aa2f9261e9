package snapmock

import (
	"context"

	domain "loanflow/internal/domain/usersnapshot"
)

var _ domain.Source = (*Source)(nil)

// Source is a function-backed mock that satisfies usersnapshot.Source.
type Source struct {
	FindByIDsFn func(ctx context.Context, userIDs []string) ([]domain.Snapshot, error)
	FindByIDFn  func(ctx context.Context, userID string) (*domain.Snapshot, error)
}

func (m *Source) FindByIDs(ctx context.Context, userIDs []string) ([]domain.Snapshot, error) {
	if m.FindByIDsFn != nil {
		return m.FindByIDsFn(ctx, userIDs)
	}
	return nil, nil
}

func (m *Source) FindByID(ctx context.Context, userID string) (*domain.Snapshot, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, userID)
	}
	return nil, context.Canceled
}
