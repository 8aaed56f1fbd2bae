package domain

import "errors"

var ErrPostNotFound = errors.New("blog post not found")
var ErrJobNotFound = errors.New("job posting not found")
var ErrServiceNotFound = errors.New("coaching service not found")

// BlogPost is one article in the fixed editorial catalog.
type BlogPost struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Excerpt       string `json:"excerpt"`
	Content       string `json:"content"`
	Author        string `json:"author"`
	AuthorRole    string `json:"author_role"`
	PublishedDate string `json:"published_date"`
	ReadTime      string `json:"read_time"`
	Category      string `json:"category"`
	Image         string `json:"image"`
	Likes         int    `json:"likes"`
	Shares        int    `json:"shares"`
}

// JobPosting is one opening in the fixed jobs board catalog.
type JobPosting struct {
	ID                  int      `json:"id"`
	Title               string   `json:"title"`
	Company             string   `json:"company"`
	Location            string   `json:"location"`
	Type                string   `json:"type"`
	Salary              string   `json:"salary"`
	Description         string   `json:"description"`
	Requirements        []string `json:"requirements"`
	Benefits            []string `json:"benefits"`
	PostedDate          string   `json:"posted_date"`
	ApplicationDeadline string   `json:"application_deadline"`
	Remote              bool     `json:"remote"`
	ExperienceLevel     string   `json:"experience_level"`
	Department          string   `json:"department"`
}

// CoachingService is one bookable offering in the service catalog.
type CoachingService struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
}

// Coach is one coach profile shown on the coaching page.
type Coach struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Title          string   `json:"title"`
	Specialization string   `json:"specialization"`
	Experience     string   `json:"experience"`
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"review_count"`
	Image          string   `json:"image"`
	Bio            string   `json:"bio"`
	Availability   []string `json:"availability"`
}

// Testimonial is one client quote shown on the home page.
type Testimonial struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Image   string `json:"image"`
}
