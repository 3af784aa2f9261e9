package usersnapshot

import "context"

type Source interface {
	// FindByIDs returns the snapshots that exist; missing ids are simply
	// absent from the result.
	FindByIDs(ctx context.Context, userIDs []string) ([]Snapshot, error)
	FindByID(ctx context.Context, userID string) (*Snapshot, error)
}
