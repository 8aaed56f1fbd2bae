// Package content serves the site's fixed editorial catalogs. The data is
// compiled in; nothing here mutates after construction.
package content

import (
	"context"

	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
)

// Catalog implements ports.ContentRepository over the built-in fixtures.
type Catalog struct {
	posts        []domain.BlogPost
	jobs         []domain.JobPosting
	services     []domain.CoachingService
	coaches      []domain.Coach
	testimonials []domain.Testimonial
}

func NewCatalog() *Catalog {
	return &Catalog{
		posts:        blogPosts,
		jobs:         jobPostings,
		services:     coachingServices,
		coaches:      coaches,
		testimonials: testimonials,
	}
}

func (c *Catalog) ListPosts(_ context.Context) ([]domain.BlogPost, error) {
	return append([]domain.BlogPost(nil), c.posts...), nil
}

func (c *Catalog) FindPost(_ context.Context, id int) (*domain.BlogPost, error) {
	for _, p := range c.posts {
		if p.ID == id {
			post := p
			return &post, nil
		}
	}
	return nil, domain.ErrPostNotFound
}

func (c *Catalog) ListJobs(_ context.Context) ([]domain.JobPosting, error) {
	return append([]domain.JobPosting(nil), c.jobs...), nil
}

func (c *Catalog) FindJob(_ context.Context, id int) (*domain.JobPosting, error) {
	for _, j := range c.jobs {
		if j.ID == id {
			job := j
			return &job, nil
		}
	}
	return nil, domain.ErrJobNotFound
}

func (c *Catalog) ListServices(_ context.Context) ([]domain.CoachingService, error) {
	return append([]domain.CoachingService(nil), c.services...), nil
}

func (c *Catalog) FindService(_ context.Context, id int) (*domain.CoachingService, error) {
	for _, s := range c.services {
		if s.ID == id {
			svc := s
			return &svc, nil
		}
	}
	return nil, domain.ErrServiceNotFound
}

func (c *Catalog) ListCoaches(_ context.Context) ([]domain.Coach, error) {
	return append([]domain.Coach(nil), c.coaches...), nil
}

func (c *Catalog) ListTestimonials(_ context.Context) ([]domain.Testimonial, error) {
	return append([]domain.Testimonial(nil), c.testimonials...), nil
}
