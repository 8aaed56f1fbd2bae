package content

import (
	"context"
	"testing"

	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
)

func TestCatalog_FindPost(t *testing.T) {
	c := NewCatalog()

	post, err := c.FindPost(context.Background(), 1)
	if err != nil {
		t.Fatalf("find post 1: %v", err)
	}
	if post.Title == "" || post.Author == "" {
		t.Fatalf("post 1 incomplete: %+v", post)
	}

	if _, err := c.FindPost(context.Background(), 999); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCatalog_ListSizes(t *testing.T) {
	c := NewCatalog()
	ctx := context.Background()

	posts, _ := c.ListPosts(ctx)
	jobs, _ := c.ListJobs(ctx)
	services, _ := c.ListServices(ctx)
	coaches, _ := c.ListCoaches(ctx)
	testimonials, _ := c.ListTestimonials(ctx)

	if len(posts) != 5 || len(jobs) != 5 || len(services) != 4 || len(coaches) != 3 || len(testimonials) != 3 {
		t.Fatalf("unexpected catalog sizes: %d posts, %d jobs, %d services, %d coaches, %d testimonials",
			len(posts), len(jobs), len(services), len(coaches), len(testimonials))
	}
}

func TestCatalog_ListReturnsCopy(t *testing.T) {
	c := NewCatalog()

	posts, _ := c.ListPosts(context.Background())
	posts[0].Title = "mutated"

	again, _ := c.ListPosts(context.Background())
	if again[0].Title == "mutated" {
		t.Fatalf("catalog fixture was mutated through a returned slice")
	}
}

func TestCatalog_FindService(t *testing.T) {
	c := NewCatalog()

	svc, err := c.FindService(context.Background(), 2)
	if err != nil {
		t.Fatalf("find service 2: %v", err)
	}
	if svc.Title != "Interview Preparation" {
		t.Fatalf("unexpected service: %+v", svc)
	}

	if _, err := c.FindService(context.Background(), 42); err != domain.ErrServiceNotFound {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}
