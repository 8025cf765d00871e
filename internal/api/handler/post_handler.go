package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mernapp/mern-api/internal/api/metrics"
	"github.com/mernapp/mern-api/internal/core/ports"
)

// PostHandler handles HTTP requests for the posts resource.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /api/posts.
//
// @Summary      List posts, newest first, with their author expanded
// @Description  author is null when the referenced user has been deleted.
// @Tags         posts
// @Produce      json
// @Success      200  {object}  Envelope{data=[]domain.PostView}
// @Failure      500  {object}  Envelope
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.ListPosts(c.Request().Context())
	if err != nil {
		return failed("Failed to fetch posts", err)
	}
	return c.JSON(http.StatusOK, list(posts))
}

// Create handles POST /api/posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "Post"
// @Success      201   {object}  Envelope{data=domain.PostView}
// @Failure      400   {object}  Envelope
// @Failure      500   {object}  Envelope
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.service.CreatePost(c.Request().Context(), req.toInput())
	if err != nil {
		return failed("Failed to create post", err)
	}

	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, withMessage("Post created successfully", post))
}
