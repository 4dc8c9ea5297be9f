package database

import (
	"context"
	"encoding/json"
	"fmt"

	"biophilic/backend/models"
)

// communityPostsKey holds the whole feed as one JSON array of posts.
const communityPostsKey = "community_posts"

type NewPost struct {
	Content string
	Author  models.Author
}

type NewReply struct {
	Content string
	Author  models.Author
}

// GetPosts returns the community feed, newest first.
func (s *Store) GetPosts(ctx context.Context) ([]models.Post, error) {
	s.feedMu.Lock()
	defer s.feedMu.Unlock()
	return s.loadPosts(ctx)
}

func (s *Store) CreateDiscussionPost(ctx context.Context, in NewPost) (*models.Post, error) {
	var created models.Post
	err := s.updatePosts(ctx, func(posts []models.Post) ([]models.Post, bool) {
		created = models.Post{
			ID:        s.newID(),
			Content:   in.Content,
			Author:    in.Author,
			CreatedAt: s.now(),
			Replies:   []models.Reply{},
		}
		return append([]models.Post{created}, posts...), true
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// AddReplyToPost returns nil, nil when the post does not exist.
func (s *Store) AddReplyToPost(ctx context.Context, postID string, in NewReply) (*models.Reply, error) {
	var reply *models.Reply
	err := s.updatePosts(ctx, func(posts []models.Post) ([]models.Post, bool) {
		for i := range posts {
			if posts[i].ID != postID {
				continue
			}
			r := models.Reply{ID: s.newID(), Content: in.Content, Author: in.Author, CreatedAt: s.now()}
			posts[i].Replies = append(posts[i].Replies, r)
			reply = &r
			return posts, true
		}
		return posts, false
	})
	return reply, err
}

func (s *Store) LikePost(ctx context.Context, postID string) (bool, error) {
	var found bool
	err := s.updatePosts(ctx, func(posts []models.Post) ([]models.Post, bool) {
		for i := range posts {
			if posts[i].ID == postID {
				posts[i].Likes++
				found = true
				return posts, true
			}
		}
		return posts, false
	})
	return found, err
}

func (s *Store) DeletePost(ctx context.Context, postID string) (bool, error) {
	var found bool
	err := s.updatePosts(ctx, func(posts []models.Post) ([]models.Post, bool) {
		for i := range posts {
			if posts[i].ID == postID {
				found = true
				return append(posts[:i], posts[i+1:]...), true
			}
		}
		return posts, false
	})
	return found, err
}

// updatePosts runs one read-modify-write cycle on the feed blob. mutate
// reports whether anything changed; nothing is written when it did not.
func (s *Store) updatePosts(ctx context.Context, mutate func([]models.Post) ([]models.Post, bool)) error {
	s.feedMu.Lock()
	defer s.feedMu.Unlock()

	posts, err := s.loadPosts(ctx)
	if err != nil {
		return err
	}
	posts, changed := mutate(posts)
	if !changed {
		return nil
	}
	raw, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("encode community posts: %w", err)
	}
	return s.kv.Set(ctx, communityPostsKey, raw)
}

func (s *Store) loadPosts(ctx context.Context) ([]models.Post, error) {
	raw, ok, err := s.kv.Get(ctx, communityPostsKey)
	if err != nil {
		return nil, err
	}
	posts := []models.Post{}
	if !ok || len(raw) == 0 {
		return posts, nil
	}
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, fmt.Errorf("decode community posts: %w", err)
	}
	return posts, nil
}
