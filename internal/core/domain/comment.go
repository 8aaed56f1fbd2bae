package domain

import (
	"errors"
	"time"
)

var ErrCommentNotFound = errors.New("comment not found")

// Comment is one reader comment on a blog post. LikedBy records the user
// ids that have liked the comment so that likes stay idempotent per user.
type Comment struct {
	ID        string    `json:"id"`
	PostID    int       `json:"post_id"`
	Author    string    `json:"author"`
	Avatar    string    `json:"avatar,omitempty"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	LikedBy   []string  `json:"liked_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactMessage is one submission of the public contact form.
type ContactMessage struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}
