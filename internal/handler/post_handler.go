package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"forumhub/internal/auth"
	"forumhub/internal/service"
)

// PostHandler handles post submission and the public listing.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// CreatePostRequest represents a post submission. There is deliberately no
// status field: the review status is assigned server-side.
type CreatePostRequest struct {
	Category string `json:"category" validate:"required,max=64"`
	Title    string `json:"title" validate:"required,max=255"`
	Content  string `json:"content" validate:"required"`
}

// CreatePost godoc
// @Summary Submit a post for review
// @Tags posts
// @Accept json
// @Produce json
// @Param request body CreatePostRequest true "Post content"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Security BearerAuth
// @Router /posts [post]
func (h *PostHandler) CreatePost(c echo.Context) error {
	user := auth.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.postService.CreatePost(c.Request().Context(), user.ID, req.Category, req.Title, req.Content); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "post submission failed")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "post submitted for review",
	})
}

// ListPosts godoc
// @Summary List approved posts, newest first
// @Tags posts
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.Envelope
// @Router /posts [get]
func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.postService.ListPosts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load posts")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"posts":   posts,
	})
}
