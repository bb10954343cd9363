package storage

import (
	"context"
	"errors"

	"rakshakmorcha/internal/domain"
)

var ErrNotFound = errors.New("record not found")

const (
	ModeDatabase = "database"
	ModeMemory   = "memory"
)

// Store is the persistence gateway for Media and SocialWork. One
// implementation is selected at startup (database-backed when the
// configured database is reachable, in-memory otherwise) and injected
// into the handlers.
//
// Known divergence between the two: database mode lists newest-first,
// memory mode lists in insertion order.
type Store interface {
	CreateMedia(ctx context.Context, m *domain.Media) error
	ListMedia(ctx context.Context) ([]domain.Media, error)
	GetMedia(ctx context.Context, id string) (*domain.Media, error)
	DeleteMedia(ctx context.Context, id string) error

	CreateSocialWork(ctx context.Context, w *domain.SocialWork) error
	ListSocialWorks(ctx context.Context) ([]domain.SocialWork, error)
	GetSocialWork(ctx context.Context, id string) (*domain.SocialWork, error)
	DeleteSocialWork(ctx context.Context, id string) error

	Mode() string
}
