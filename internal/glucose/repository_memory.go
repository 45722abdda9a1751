package glucose

import "context"

type InMemoryRepository struct {
	profiles map[string]StoredProfile
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		profiles: make(map[string]StoredProfile),
	}
}

func (r *InMemoryRepository) Upsert(
	ctx context.Context,
	userID string,
	profile StoredProfile,
) error {
	r.profiles[userID] = profile
	return nil
}

func (r *InMemoryRepository) Find(
	ctx context.Context,
	userID string,
) (*StoredProfile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return &profile, nil
}
