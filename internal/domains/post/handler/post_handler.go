package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"publisher-backend/internal/domains/post"
	"publisher-backend/internal/shared/response"
)

type PostHandler struct {
	svc post.Service
}

func NewPostHandler(svc post.Service) *PostHandler {
	return &PostHandler{svc: svc}
}

// Create handles POST /posts
func (h *PostHandler) Create(c *gin.Context) {
	var req post.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid post", err)
		return
	}

	p, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		response.InternalServerError(c, "Failed to create post")
		return
	}

	response.Success(c, http.StatusCreated, p)
}

// FindAll handles GET /posts
func (h *PostHandler) FindAll(c *gin.Context) {
	posts, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list posts")
		return
	}

	response.Success(c, http.StatusOK, posts)
}

// FindOne handles GET /posts/:id
func (h *PostHandler) FindOne(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.svc.FindOne(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			response.NotFound(c, "Post not found")
			return
		}
		response.InternalServerError(c, "Failed to get post")
		return
	}

	response.Success(c, http.StatusOK, p)
}

// Update handles PUT /posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req post.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid post", err)
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			response.NotFound(c, "Post not found")
			return
		}
		response.InternalServerError(c, "Failed to update post")
		return
	}

	response.Success(c, http.StatusOK, p)
}

// Remove handles DELETE /posts/:id
func (h *PostHandler) Remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Remove(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, post.ErrPostNotFound):
			response.NotFound(c, "Post not found")
		case errors.Is(err, post.ErrPostInUse):
			response.Forbidden(c, "Post is referenced by a publication")
		default:
			response.InternalServerError(c, "Failed to delete post")
		}
		return
	}

	response.Success(c, http.StatusOK, nil)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid post id")
		return 0, false
	}
	return id, true
}
