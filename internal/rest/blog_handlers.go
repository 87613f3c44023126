package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-backend/internal/blog"
)

type BlogHandler struct {
	m   *blog.Manager
	log *slog.Logger
}

func NewBlogHandler(m *blog.Manager, log *slog.Logger) *BlogHandler {
	return &BlogHandler{
		m:   m,
		log: log,
	}
}

func (h *BlogHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// PostList handles GET / and GET /tag/:slug
// @Summary List published posts
// @Description Retrieves one page of published posts sorted by publishedAt DESC, optionally narrowed to a tag. The raw page token is clamped: non-numeric falls back to page 1, out-of-range to the last page.
// @Tags posts
// @Produce json
// @Param slug path string false "Tag slug"
// @Param page query string false "Page token"
// @Success 200 {object} rest.PostListResponse
// @Failure 404,500 {object} map[string]string
// @Router / [get]
func (h *BlogHandler) PostList(c echo.Context) error {
	page, err := h.m.PostPage(c.Request().Context(), c.Param("slug"), c.QueryParam("page"))
	if err != nil {
		if errors.Is(err, blog.ErrTagNotFound) {
			return c.String(http.StatusNotFound, "tag not found")
		}
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	resp := PostListResponse{
		Posts:         Map(page.Posts.Items, NewPostSummary),
		Page:          page.Posts.Number,
		PageCount:     page.Posts.PageCount,
		HasOtherPages: page.Posts.HasOtherPages(),
	}
	if page.Tag != nil {
		tag := NewTag(*page.Tag)
		resp.Tag = &tag
	}

	return c.JSON(http.StatusOK, resp)
}

// PostDetail handles GET /:year/:month/:day/:slug
// @Summary Get a single published post
// @Description Retrieves a published post by its publication day and slug, together with its active comments and similar posts ranked by shared tags.
// @Tags posts
// @Produce json
// @Success 200 {object} rest.PostDetailResponse
// @Failure 404,500 {object} map[string]string
// @Router /{year}/{month}/{day}/{slug} [get]
func (h *BlogHandler) PostDetail(c echo.Context) error {
	year, errY := strconv.Atoi(c.Param("year"))
	month, errM := strconv.Atoi(c.Param("month"))
	day, errD := strconv.Atoi(c.Param("day"))
	if errY != nil || errM != nil || errD != nil {
		return c.String(http.StatusNotFound, "post not found")
	}

	ctx := c.Request().Context()

	post, err := h.m.PostBySlugDate(ctx, year, month, day, c.Param("slug"))
	if err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			return c.String(http.StatusNotFound, "post not found")
		}
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	comments, err := h.m.ActiveComments(ctx, post.ID)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	similar, err := h.m.SimilarPosts(ctx, post, blog.SimilarPostLimit)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, PostDetailResponse{
		Post:         NewPost(*post),
		Comments:     Map(comments, NewComment),
		SimilarPosts: Map(similar, NewPostSummary),
	})
}

// PostComment handles POST /posts/:id/comment
// @Summary Submit a comment
// @Description Validates and persists a comment against a published post. Validation failure returns the per-field errors with no comment persisted. Non-POST requests get 405 from the router.
// @Tags comments
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 200 {object} rest.CommentResponse
// @Failure 404,500 {object} map[string]string
// @Router /posts/{id}/comment [post]
func (h *BlogHandler) PostComment(c echo.Context) error {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, "post not found")
	}

	var form blog.CommentForm
	if err := c.Bind(&form); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	comment, err := h.m.SubmitComment(c.Request().Context(), postID, form)
	if err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			return c.String(http.StatusNotFound, "post not found")
		}
		if verr, ok := blog.AsValidationErrors(err); ok {
			return c.JSON(http.StatusOK, CommentResponse{Errors: NewFieldErrors(verr)})
		}
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	created := NewComment(*comment)
	return c.JSON(http.StatusOK, CommentResponse{Comment: &created})
}

// PostShare handles GET|POST /posts/:id/share
// @Summary Forward a post by email
// @Description GET returns the blank form state for a published post. POST validates the sender and recipient fields and dispatches the message through the mail relay.
// @Tags posts
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 200 {object} rest.ShareResponse
// @Failure 404,500 {object} map[string]string
// @Router /posts/{id}/share [post]
func (h *BlogHandler) PostShare(c echo.Context) error {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, "post not found")
	}

	ctx := c.Request().Context()

	if c.Request().Method != http.MethodPost {
		// Form display still requires the post to exist and be published.
		if _, err := h.m.PostByID(ctx, postID); err != nil {
			if errors.Is(err, blog.ErrPostNotFound) {
				return c.String(http.StatusNotFound, "post not found")
			}
			return h.handleError(c, err, http.StatusInternalServerError, "internal error")
		}
		return c.JSON(http.StatusOK, ShareResponse{Sent: false})
	}

	var form blog.ShareForm
	if err := c.Bind(&form); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	if err := h.m.SharePost(ctx, postID, form); err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			return c.String(http.StatusNotFound, "post not found")
		}
		if verr, ok := blog.AsValidationErrors(err); ok {
			return c.JSON(http.StatusOK, ShareResponse{Sent: false, Errors: NewFieldErrors(verr)})
		}
		return h.handleError(c, err, http.StatusInternalServerError, "failed to send mail")
	}

	return c.JSON(http.StatusOK, ShareResponse{Sent: true})
}

// Search handles GET /search
// @Summary Search published posts
// @Description Substring match over title and body.
// @Tags posts
// @Produce json
// @Param query query string true "Search query"
// @Success 200 {object} rest.SearchResponse
// @Failure 500 {object} map[string]string
// @Router /search [get]
func (h *BlogHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")

	posts, err := h.m.SearchPosts(c.Request().Context(), query)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, SearchResponse{
		Query: query,
		Posts: Map(posts, NewPostSummary),
	})
}

func (h *BlogHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
