package domain

import "context"

type TrackRepository interface {
	// GetPurchasable returns the published tracks among ids. Callers
	// decide whether a shorter result than the request is an error.
	GetPurchasable(ctx context.Context, ids []uint64) ([]*Track, error)
	GetTrackByID(ctx context.Context, trackID uint64) (*Track, error)
	ListPublished(ctx context.Context) ([]*Track, error)
}

type UserRepository interface {
	GetUserByID(ctx context.Context, userID string) (*User, error)
}
