package ports

import (
	"context"

	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
)

// CommentStore persists per-post comment lists. Each post's comments live
// under one key; lists are small and replaced wholesale on write.
type CommentStore interface {
	List(ctx context.Context, postID int) ([]domain.Comment, error)
	Save(ctx context.Context, postID int, comments []domain.Comment) error
}

// AddCommentInput is the DTO for posting a comment.
type AddCommentInput struct {
	PostID  int
	Author  string
	Avatar  string
	Content string
}

// CommentService owns reader comments on blog posts.
type CommentService interface {
	List(ctx context.Context, postID int) ([]domain.Comment, error)
	Add(ctx context.Context, input AddCommentInput) (*domain.Comment, error)
	Like(ctx context.Context, postID int, commentID, userID string) (*domain.Comment, error)
}
