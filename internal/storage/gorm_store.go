package storage

import (
	"context"
	"errors"

	"rakshakmorcha/internal/domain"

	"gorm.io/gorm"
)

// GormStore persists entities in the configured SQL database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&domain.Media{}, &domain.SocialWork{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Mode() string { return ModeDatabase }

func (s *GormStore) CreateMedia(ctx context.Context, m *domain.Media) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *GormStore) ListMedia(ctx context.Context) ([]domain.Media, error) {
	var media []domain.Media
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&media).Error
	return media, err
}

func (s *GormStore) GetMedia(ctx context.Context, id string) (*domain.Media, error) {
	var m domain.Media
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) DeleteMedia(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Media{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) CreateSocialWork(ctx context.Context, w *domain.SocialWork) error {
	if err := s.db.WithContext(ctx).Create(w).Error; err != nil {
		return err
	}
	return s.resolveMedia(ctx, w)
}

func (s *GormStore) ListSocialWorks(ctx context.Context) ([]domain.SocialWork, error) {
	var works []domain.SocialWork
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&works).Error; err != nil {
		return nil, err
	}
	for i := range works {
		if err := s.resolveMedia(ctx, &works[i]); err != nil {
			return nil, err
		}
	}
	return works, nil
}

func (s *GormStore) GetSocialWork(ctx context.Context, id string) (*domain.SocialWork, error) {
	var w domain.SocialWork
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.resolveMedia(ctx, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *GormStore) DeleteSocialWork(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.SocialWork{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// resolveMedia attaches live Media rows for the stored ids, keeping the
// stored order and dropping ids that no longer resolve.
func (s *GormStore) resolveMedia(ctx context.Context, w *domain.SocialWork) error {
	w.Media = []domain.Media{}
	if len(w.MediaIDs) == 0 {
		return nil
	}

	var rows []domain.Media
	if err := s.db.WithContext(ctx).Where("id IN ?", w.MediaIDs).Find(&rows).Error; err != nil {
		return err
	}

	byID := make(map[string]domain.Media, len(rows))
	for _, m := range rows {
		byID[m.ID] = m
	}
	for _, id := range w.MediaIDs {
		if m, ok := byID[id]; ok {
			w.Media = append(w.Media, m)
		}
	}
	return nil
}
