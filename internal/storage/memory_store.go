package storage

import (
	"context"
	"strconv"
	"sync"
	"time"

	"rakshakmorcha/internal/domain"
)

// MemoryStore is the degraded-mode fallback used when no database is
// reachable at startup. Contents live for the process lifetime only.
//
// Lists return insertion order (the database store returns newest-first);
// ids are unix-millisecond timestamps, so rapid concurrent creates can
// collide. Accepted limitation of the fallback path.
type MemoryStore struct {
	mu          sync.Mutex
	media       []domain.Media
	socialWorks []domain.SocialWork
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Mode() string { return ModeMemory }

func (s *MemoryStore) CreateMedia(_ context.Context, m *domain.Media) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == "" {
		m.ID = timestampID()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	s.media = append(s.media, *m)
	return nil
}

func (s *MemoryStore) ListMedia(_ context.Context) ([]domain.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Media, len(s.media))
	copy(out, s.media)
	return out, nil
}

func (s *MemoryStore) GetMedia(_ context.Context, id string) (*domain.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.media {
		if s.media[i].ID == id {
			m := s.media[i]
			return &m, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) DeleteMedia(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.media {
		if s.media[i].ID == id {
			s.media = append(s.media[:i], s.media[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) CreateSocialWork(_ context.Context, w *domain.SocialWork) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w.ID == "" {
		w.ID = timestampID()
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now()
	}
	s.socialWorks = append(s.socialWorks, *w)
	s.resolveMedia(w)
	return nil
}

func (s *MemoryStore) ListSocialWorks(_ context.Context) ([]domain.SocialWork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.SocialWork, len(s.socialWorks))
	copy(out, s.socialWorks)
	for i := range out {
		s.resolveMedia(&out[i])
	}
	return out, nil
}

func (s *MemoryStore) GetSocialWork(_ context.Context, id string) (*domain.SocialWork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.socialWorks {
		if s.socialWorks[i].ID == id {
			w := s.socialWorks[i]
			s.resolveMedia(&w)
			return &w, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) DeleteSocialWork(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.socialWorks {
		if s.socialWorks[i].ID == id {
			s.socialWorks = append(s.socialWorks[:i], s.socialWorks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// resolveMedia mirrors the database store's read-time resolution: stored
// order kept, dangling ids dropped. Caller holds the lock.
func (s *MemoryStore) resolveMedia(w *domain.SocialWork) {
	w.Media = []domain.Media{}
	for _, id := range w.MediaIDs {
		for i := range s.media {
			if s.media[i].ID == id {
				w.Media = append(w.Media, s.media[i])
				break
			}
		}
	}
}

func timestampID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
