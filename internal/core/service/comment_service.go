package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/deepmindconcepts/coaching-platform/internal/api/metrics"
	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
	"github.com/deepmindconcepts/coaching-platform/internal/core/ports"
)

// CommentService manages reader comments on blog posts. Comment lists are
// read-modify-written wholesale per post; the mutex serializes those
// round-trips since the store itself has no compare-and-set.
type CommentService struct {
	mu      sync.Mutex
	catalog ports.ContentRepository
	store   ports.CommentStore
	logger  zerolog.Logger
}

func NewCommentService(catalog ports.ContentRepository, store ports.CommentStore, logger zerolog.Logger) *CommentService {
	return &CommentService{catalog: catalog, store: store, logger: logger}
}

// List returns the post's comments, newest first. Unknown posts are
// reported as not found rather than as an empty list.
func (s *CommentService) List(ctx context.Context, postID int) ([]domain.Comment, error) {
	if _, err := s.catalog.FindPost(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.store.List(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// Add prepends a new comment to the post's list.
func (s *CommentService) Add(ctx context.Context, input ports.AddCommentInput) (*domain.Comment, error) {
	if _, err := s.catalog.FindPost(ctx, input.PostID); err != nil {
		return nil, err
	}

	comment := domain.Comment{
		ID:        uuid.NewString(),
		PostID:    input.PostID,
		Author:    input.Author,
		Avatar:    input.Avatar,
		Content:   input.Content,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	comments, err := s.store.List(ctx, input.PostID)
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	comments = append([]domain.Comment{comment}, comments...)
	if err := s.store.Save(ctx, input.PostID, comments); err != nil {
		return nil, fmt.Errorf("save comments: %w", err)
	}

	metrics.CommentsPostedTotal.Inc()
	return &comment, nil
}

// Like records userID's like on a comment. Liking a comment twice is a
// no-op, so the like count moves at most once per user.
func (s *CommentService) Like(ctx context.Context, postID int, commentID, userID string) (*domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comments, err := s.store.List(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}

	for i := range comments {
		if comments[i].ID != commentID {
			continue
		}
		for _, id := range comments[i].LikedBy {
			if id == userID {
				liked := comments[i]
				return &liked, nil
			}
		}
		comments[i].LikedBy = append(comments[i].LikedBy, userID)
		comments[i].Likes++
		if err := s.store.Save(ctx, postID, comments); err != nil {
			return nil, fmt.Errorf("save comments: %w", err)
		}
		liked := comments[i]
		return &liked, nil
	}

	return nil, domain.ErrCommentNotFound
}
