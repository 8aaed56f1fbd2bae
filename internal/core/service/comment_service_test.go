package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
	"github.com/deepmindconcepts/coaching-platform/internal/core/ports"
)

type stubCommentStore struct {
	mu    sync.Mutex
	lists map[int][]domain.Comment
}

func newStubCommentStore() *stubCommentStore {
	return &stubCommentStore{lists: make(map[int][]domain.Comment)}
}

func (s *stubCommentStore) List(_ context.Context, postID int) ([]domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Comment(nil), s.lists[postID]...), nil
}

func (s *stubCommentStore) Save(_ context.Context, postID int, comments []domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[postID] = append([]domain.Comment(nil), comments...)
	return nil
}

func newCommentService() (*CommentService, *stubCommentStore) {
	store := newStubCommentStore()
	return NewCommentService(stubCatalog{}, store, zerolog.Nop()), store
}

func TestCommentService_AddAndList(t *testing.T) {
	svc, _ := newCommentService()

	first, err := svc.Add(context.Background(), ports.AddCommentInput{
		PostID: 1, Author: "John Doe", Content: "Great read.",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.ID == "" {
		t.Fatalf("expected generated id")
	}

	second, err := svc.Add(context.Background(), ports.AddCommentInput{
		PostID: 1, Author: "Sarah Johnson", Content: "Agreed.",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	comments, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	// Newest first.
	if comments[0].ID != second.ID || comments[1].ID != first.ID {
		t.Fatalf("unexpected order: %v then %v", comments[0].Author, comments[1].Author)
	}
}

func TestCommentService_UnknownPost(t *testing.T) {
	svc, _ := newCommentService()

	if _, err := svc.List(context.Background(), 99); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
	if _, err := svc.Add(context.Background(), ports.AddCommentInput{PostID: 99, Author: "x", Content: "y"}); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCommentService_LikeIsIdempotentPerUser(t *testing.T) {
	svc, _ := newCommentService()

	comment, err := svc.Add(context.Background(), ports.AddCommentInput{
		PostID: 1, Author: "John Doe", Content: "Great read.",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	liked, err := svc.Like(context.Background(), 1, comment.ID, "3")
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	if liked.Likes != 1 {
		t.Fatalf("expected 1 like, got %d", liked.Likes)
	}

	again, err := svc.Like(context.Background(), 1, comment.ID, "3")
	if err != nil {
		t.Fatalf("second like: %v", err)
	}
	if again.Likes != 1 {
		t.Fatalf("same user liked twice: %d", again.Likes)
	}

	other, err := svc.Like(context.Background(), 1, comment.ID, "4")
	if err != nil {
		t.Fatalf("other user like: %v", err)
	}
	if other.Likes != 2 {
		t.Fatalf("expected 2 likes, got %d", other.Likes)
	}
}

func TestCommentService_LikeUnknownComment(t *testing.T) {
	svc, _ := newCommentService()

	if _, err := svc.Like(context.Background(), 1, "missing", "3"); !errors.Is(err, domain.ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}
