package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/deepmindconcepts/coaching-platform/internal/core/ports"
)

// ContentHandler serves the fixed editorial catalogs.
type ContentHandler struct {
	catalog ports.ContentRepository
}

func NewContentHandler(catalog ports.ContentRepository) *ContentHandler {
	return &ContentHandler{catalog: catalog}
}

// ListPosts returns the blog catalog.
//
// @Summary      List blog posts
// @Tags         content
// @Produce      json
// @Success      200  {array}  domain.BlogPost
// @Router       /blog [get]
func (h *ContentHandler) ListPosts(c echo.Context) error {
	posts, err := h.catalog.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// GetPost returns one blog post.
//
// @Summary      Get a blog post
// @Tags         content
// @Produce      json
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  domain.BlogPost
// @Failure      404  {object}  map[string]string
// @Router       /blog/{id} [get]
func (h *ContentHandler) GetPost(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	post, err := h.catalog.FindPost(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// ListJobs returns the job board catalog.
//
// @Summary      List job postings
// @Tags         content
// @Produce      json
// @Success      200  {array}  domain.JobPosting
// @Router       /jobs [get]
func (h *ContentHandler) ListJobs(c echo.Context) error {
	jobs, err := h.catalog.ListJobs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// GetJob returns one job posting.
//
// @Summary      Get a job posting
// @Tags         content
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  domain.JobPosting
// @Failure      404  {object}  map[string]string
// @Router       /jobs/{id} [get]
func (h *ContentHandler) GetJob(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	job, err := h.catalog.FindJob(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// ListServices returns the coaching service catalog.
//
// @Summary      List coaching services
// @Tags         content
// @Produce      json
// @Success      200  {array}  domain.CoachingService
// @Router       /coaching/services [get]
func (h *ContentHandler) ListServices(c echo.Context) error {
	services, err := h.catalog.ListServices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// GetService returns one coaching service.
//
// @Summary      Get a coaching service
// @Tags         content
// @Produce      json
// @Param        id   path      int  true  "Service ID"
// @Success      200  {object}  domain.CoachingService
// @Failure      404  {object}  map[string]string
// @Router       /coaching/services/{id} [get]
func (h *ContentHandler) GetService(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	svc, err := h.catalog.FindService(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// ListCoaches returns the coach profiles.
//
// @Summary      List coaches
// @Tags         content
// @Produce      json
// @Success      200  {array}  domain.Coach
// @Router       /coaching/coaches [get]
func (h *ContentHandler) ListCoaches(c echo.Context) error {
	coaches, err := h.catalog.ListCoaches(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, coaches)
}

// ListTestimonials returns the client testimonials.
//
// @Summary      List testimonials
// @Tags         content
// @Produce      json
// @Success      200  {array}  domain.Testimonial
// @Router       /testimonials [get]
func (h *ContentHandler) ListTestimonials(c echo.Context) error {
	testimonials, err := h.catalog.ListTestimonials(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, testimonials)
}

// pathID parses the :id path parameter as a catalog identifier.
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
