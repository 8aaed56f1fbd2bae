package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deepmindconcepts/coaching-platform/internal/core/ports"
)

type CommentHandler struct {
	comments ports.CommentService
}

func NewCommentHandler(comments ports.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

type addCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// List returns a post's comments, newest first.
//
// @Summary      List comments on a post
// @Tags         blog
// @Produce      json
// @Param        id   path      int  true  "Post ID"
// @Success      200  {array}   domain.Comment
// @Failure      404  {object}  map[string]string
// @Router       /blog/{id}/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	postID, err := pathID(c)
	if err != nil {
		return err
	}
	comments, err := h.comments.List(c.Request().Context(), postID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Add posts a comment as the logged-in user.
//
// @Summary      Comment on a post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Post ID"
// @Param        body  body      addCommentRequest  true  "Comment body"
// @Success      201   {object}  domain.Comment
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /blog/{id}/comments [post]
func (h *CommentHandler) Add(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	postID, err := pathID(c)
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.comments.Add(c.Request().Context(), ports.AddCommentInput{
		PostID:  postID,
		Author:  sess.User.Name,
		Avatar:  sess.User.Avatar,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// Like records the logged-in user's like on a comment. Liking twice is a
// no-op.
//
// @Summary      Like a comment
// @Tags         blog
// @Produce      json
// @Param        id         path      int     true  "Post ID"
// @Param        commentID  path      string  true  "Comment ID"
// @Success      200        {object}  domain.Comment
// @Failure      404        {object}  map[string]string
// @Router       /blog/{id}/comments/{commentID}/like [post]
func (h *CommentHandler) Like(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	postID, err := pathID(c)
	if err != nil {
		return err
	}

	comment, err := h.comments.Like(c.Request().Context(), postID, c.Param("commentID"), sess.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comment)
}
