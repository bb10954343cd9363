package socialwork

import (
	"context"
	"strings"

	"rakshakmorcha/internal/domain"
	"rakshakmorcha/internal/storage"
)

type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Create records a social work with the given media references. The ids
// are stored as supplied; they resolve (or silently drop) at read time.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.SocialWork, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		return nil, ErrTitleDescriptionRequired
	}

	mediaIDs := req.MediaIDs
	if mediaIDs == nil {
		mediaIDs = []string{}
	}

	w := &domain.SocialWork{
		Title:       title,
		Description: description,
		MediaIDs:    mediaIDs,
	}
	if err := s.store.CreateSocialWork(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) List(ctx context.Context) ([]domain.SocialWork, error) {
	return s.store.ListSocialWorks(ctx)
}

// Delete removes the record only; referenced media are never
// cascade-deleted.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteSocialWork(ctx, id)
}
