package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
)

// CommentStore keeps each post's comment list as one JSON document.
// Key format: comments:<post_id>
type CommentStore struct {
	client *redis.Client
}

// NewCommentStore creates a CommentStore wrapping the given Redis client.
func NewCommentStore(client *redis.Client) *CommentStore {
	return &CommentStore{client: client}
}

// List returns the comments stored for postID; an absent key is an empty
// list, not an error.
func (s *CommentStore) List(ctx context.Context, postID int) ([]domain.Comment, error) {
	raw, err := s.client.Get(ctx, s.key(postID)).Result()
	if err == redis.Nil {
		return []domain.Comment{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("comments get: %w", err)
	}

	var comments []domain.Comment
	if err := json.Unmarshal([]byte(raw), &comments); err != nil {
		return nil, fmt.Errorf("comments decode: %w", err)
	}
	return comments, nil
}

// Save replaces the stored list for postID wholesale.
func (s *CommentStore) Save(ctx context.Context, postID int, comments []domain.Comment) error {
	raw, err := json.Marshal(comments)
	if err != nil {
		return fmt.Errorf("comments encode: %w", err)
	}
	if err := s.client.Set(ctx, s.key(postID), raw, 0).Err(); err != nil {
		return fmt.Errorf("comments set: %w", err)
	}
	return nil
}

func (s *CommentStore) key(postID int) string {
	return fmt.Sprintf("comments:%d", postID)
}
