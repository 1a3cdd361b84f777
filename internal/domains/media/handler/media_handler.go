package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"publisher-backend/internal/domains/media"
	"publisher-backend/internal/shared/response"
)

type MediaHandler struct {
	svc media.Service
}

func NewMediaHandler(svc media.Service) *MediaHandler {
	return &MediaHandler{svc: svc}
}

// Create handles POST /medias
func (h *MediaHandler) Create(c *gin.Context) {
	var req media.CreateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid media", err)
		return
	}

	m, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, media.ErrMediaTaken) {
			response.Conflict(c, "Media with this title and username already exists")
			return
		}
		response.InternalServerError(c, "Failed to create media")
		return
	}

	response.Success(c, http.StatusCreated, m)
}

// FindAll handles GET /medias
func (h *MediaHandler) FindAll(c *gin.Context) {
	medias, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list medias")
		return
	}

	response.Success(c, http.StatusOK, medias)
}

// FindOne handles GET /medias/:id
func (h *MediaHandler) FindOne(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	m, err := h.svc.FindOne(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, media.ErrMediaNotFound) {
			response.NotFound(c, "Media not found")
			return
		}
		response.InternalServerError(c, "Failed to get media")
		return
	}

	response.Success(c, http.StatusOK, m)
}

// Update handles PUT /medias/:id
func (h *MediaHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req media.UpdateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid media", err)
		return
	}

	m, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrMediaNotFound):
			response.NotFound(c, "Media not found")
		case errors.Is(err, media.ErrMediaTaken):
			response.Conflict(c, "Media with this title and username already exists")
		default:
			response.InternalServerError(c, "Failed to update media")
		}
		return
	}

	response.Success(c, http.StatusOK, m)
}

// Remove handles DELETE /medias/:id
func (h *MediaHandler) Remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Remove(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, media.ErrMediaNotFound):
			response.NotFound(c, "Media not found")
		case errors.Is(err, media.ErrMediaInUse):
			response.Forbidden(c, "Media is referenced by a publication")
		default:
			response.InternalServerError(c, "Failed to delete media")
		}
		return
	}

	response.Success(c, http.StatusOK, nil)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid media id")
		return 0, false
	}
	return id, true
}
