package ports

import (
	"context"

	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
)

// ContentRepository serves the fixed editorial catalogs: blog posts, job
// postings, coaching services, coaches and testimonials. Catalogs are
// read-only for the lifetime of the process.
type ContentRepository interface {
	ListPosts(ctx context.Context) ([]domain.BlogPost, error)
	FindPost(ctx context.Context, id int) (*domain.BlogPost, error)
	ListJobs(ctx context.Context) ([]domain.JobPosting, error)
	FindJob(ctx context.Context, id int) (*domain.JobPosting, error)
	ListServices(ctx context.Context) ([]domain.CoachingService, error)
	FindService(ctx context.Context, id int) (*domain.CoachingService, error)
	ListCoaches(ctx context.Context) ([]domain.Coach, error)
	ListTestimonials(ctx context.Context) ([]domain.Testimonial, error)
}
