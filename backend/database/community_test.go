package database

import (
	"context"
	"testing"

	"biophilic/backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newGormKV(t *testing.T) *GormKV {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Each connection to :memory: gets its own database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	kv, err := NewGormKV(db)
	require.NoError(t, err)
	return kv
}

func kvBackends(t *testing.T) map[string]func() KeyValueStore {
	return map[string]func() KeyValueStore{
		"memory": func() KeyValueStore { return NewMemoryKV() },
		"gorm":   func() KeyValueStore { return newGormKV(t) },
	}
}

func TestKeyValueStore(t *testing.T) {
	ctx := context.Background()
	for name, open := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			kv := open()

			_, ok, err := kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, kv.Set(ctx, "k", []byte("one")))
			require.NoError(t, kv.Set(ctx, "k", []byte("two")))
			v, ok, err := kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "two", string(v))

			require.NoError(t, kv.Remove(ctx, "k"))
			require.NoError(t, kv.Remove(ctx, "k"))
			_, ok, err = kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestCommunityFeed(t *testing.T) {
	ctx := context.Background()
	author := models.Author{ID: "1", Name: "Demo Student"}

	for name, open := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			s, err := New(Options{KV: open()})
			require.NoError(t, err)

			posts, err := s.GetPosts(ctx)
			require.NoError(t, err)
			assert.Empty(t, posts)

			first, err := s.CreateDiscussionPost(ctx, NewPost{Content: "First!", Author: author})
			require.NoError(t, err)
			second, err := s.CreateDiscussionPost(ctx, NewPost{Content: "Second", Author: author})
			require.NoError(t, err)

			reply, err := s.AddReplyToPost(ctx, first.ID, NewReply{Content: "welcome", Author: author})
			require.NoError(t, err)
			require.NotNil(t, reply)

			liked, err := s.LikePost(ctx, first.ID)
			require.NoError(t, err)
			assert.True(t, liked)

			posts, err = s.GetPosts(ctx)
			require.NoError(t, err)
			require.Len(t, posts, 2)
			assert.Equal(t, second.ID, posts[0].ID)
			assert.Equal(t, first.ID, posts[1].ID)
			assert.Equal(t, 1, posts[1].Likes)
			require.Len(t, posts[1].Replies, 1)
			assert.Equal(t, "welcome", posts[1].Replies[0].Content)

			reply, err = s.AddReplyToPost(ctx, "missing", NewReply{Content: "x"})
			require.NoError(t, err)
			assert.Nil(t, reply)
			liked, err = s.LikePost(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, liked)

			deleted, err := s.DeletePost(ctx, second.ID)
			require.NoError(t, err)
			assert.True(t, deleted)
			posts, err = s.GetPosts(ctx)
			require.NoError(t, err)
			require.Len(t, posts, 1)
			assert.Equal(t, first.ID, posts[0].ID)
		})
	}
}

func TestCommunityFeedSurvivesStoreRestart(t *testing.T) {
	ctx := context.Background()
	kv := newGormKV(t)

	s, err := New(Options{KV: kv})
	require.NoError(t, err)
	post, err := s.CreateDiscussionPost(ctx, NewPost{Content: "persisted"})
	require.NoError(t, err)

	restarted, err := New(Options{KV: kv})
	require.NoError(t, err)
	posts, err := restarted.GetPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, post.ID, posts[0].ID)
}
