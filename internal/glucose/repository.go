package glucose

import "context"

// Repository persists one profile per user, whole-record read/replace.
// Last writer wins; there is no partial-update contract.
type Repository interface {
	Upsert(ctx context.Context, userID string, profile StoredProfile) error
	Find(ctx context.Context, userID string) (*StoredProfile, error)
}
