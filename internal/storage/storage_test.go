package storage

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"rakshakmorcha/internal/database"
	"rakshakmorcha/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGormStore(t *testing.T) Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", "#", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:storage_test_%s?mode=memory&cache=shared", name)
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	store, err := NewGormStore(db)
	require.NoError(t, err)
	return store
}

// Both implementations run the same suite; divergences (list order, id
// scheme) are asserted separately below.
func forEachStore(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Run("gorm", func(t *testing.T) { fn(t, newGormStore(t)) })
	t.Run("memory", func(t *testing.T) { fn(t, NewMemoryStore()) })
}

func TestMediaLifecycle(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		list, err := s.ListMedia(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)

		m := &domain.Media{
			Filename:  "tree.jpg",
			URL:       "/uploads/123-456.jpg",
			Type:      domain.MediaTypeImage,
			Size:      2048,
			CreatedAt: time.Now(),
		}
		require.NoError(t, s.CreateMedia(ctx, m))
		require.NotEmpty(t, m.ID)

		got, err := s.GetMedia(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, "tree.jpg", got.Filename)
		assert.Equal(t, domain.MediaTypeImage, got.Type)

		list, err = s.ListMedia(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)

		require.NoError(t, s.DeleteMedia(ctx, m.ID))
		_, err = s.GetMedia(ctx, m.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, s.DeleteMedia(ctx, m.ID), ErrNotFound)
	})
}

func TestMedia_NotFound(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		_, err := s.GetMedia(ctx, "no-such-id")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, s.DeleteMedia(ctx, "no-such-id"), ErrNotFound)
	})
}

func TestSocialWorkLifecycle_ResolvesMedia(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		m := &domain.Media{Filename: "drive.png", URL: "/uploads/1.png", Type: domain.MediaTypeImage, Size: 10, CreatedAt: time.Now()}
		require.NoError(t, s.CreateMedia(ctx, m))

		w := &domain.SocialWork{
			Title:       "Tree Drive",
			Description: "Planted 200 trees",
			MediaIDs:    []string{m.ID, "dangling-id"},
		}
		require.NoError(t, s.CreateSocialWork(ctx, w))
		require.NotEmpty(t, w.ID)

		// dangling id dropped silently, live one resolved
		require.Len(t, w.Media, 1)
		assert.Equal(t, m.ID, w.Media[0].ID)

		got, err := s.GetSocialWork(ctx, w.ID)
		require.NoError(t, err)
		require.Len(t, got.Media, 1)
		assert.Equal(t, "drive.png", got.Media[0].Filename)

		// deleting the social work must not touch the media
		require.NoError(t, s.DeleteSocialWork(ctx, w.ID))
		assert.ErrorIs(t, s.DeleteSocialWork(ctx, w.ID), ErrNotFound)
		_, err = s.GetMedia(ctx, m.ID)
		require.NoError(t, err)
	})
}

func TestSocialWork_MediaDeletedAfterCreate(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		m := &domain.Media{Filename: "x.png", URL: "/uploads/x.png", Type: domain.MediaTypeImage, Size: 1, CreatedAt: time.Now()}
		require.NoError(t, s.CreateMedia(ctx, m))

		w := &domain.SocialWork{Title: "T", Description: "D", MediaIDs: []string{m.ID}}
		require.NoError(t, s.CreateSocialWork(ctx, w))

		require.NoError(t, s.DeleteMedia(ctx, m.ID))

		got, err := s.GetSocialWork(ctx, w.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Media, "reference to deleted media should drop at read time")
	})
}

func TestListOrder_DatabaseNewestFirst(t *testing.T) {
	s := newGormStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		m := &domain.Media{
			Filename:  fmt.Sprintf("f%d.jpg", i),
			URL:       fmt.Sprintf("/uploads/%d.jpg", i),
			Type:      domain.MediaTypeImage,
			Size:      1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, s.CreateMedia(ctx, m))
	}

	list, err := s.ListMedia(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "f2.jpg", list[0].Filename)
	assert.Equal(t, "f0.jpg", list[2].Filename)
}

func TestListOrder_MemoryInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		m := &domain.Media{Filename: fmt.Sprintf("f%d.jpg", i), URL: "/uploads/x", Type: domain.MediaTypeImage, Size: 1}
		require.NoError(t, s.CreateMedia(ctx, m))
	}

	list, err := s.ListMedia(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "f0.jpg", list[0].Filename)
	assert.Equal(t, "f2.jpg", list[2].Filename)
}

func TestMemoryStore_AssignsTimestampIDs(t *testing.T) {
	s := NewMemoryStore()
	m := &domain.Media{Filename: "a.jpg", URL: "/uploads/a", Type: domain.MediaTypeImage, Size: 1}
	require.NoError(t, s.CreateMedia(context.Background(), m))
	assert.NotEmpty(t, m.ID)
	assert.False(t, m.CreatedAt.IsZero())
}

func TestModes(t *testing.T) {
	assert.Equal(t, ModeMemory, NewMemoryStore().Mode())
	assert.Equal(t, ModeDatabase, newGormStore(t).Mode())
}
