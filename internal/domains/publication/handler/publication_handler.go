package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"publisher-backend/internal/domains/media"
	"publisher-backend/internal/domains/post"
	"publisher-backend/internal/domains/publication"
	"publisher-backend/internal/shared/response"
)

type PublicationHandler struct {
	svc publication.Service
}

func NewPublicationHandler(svc publication.Service) *PublicationHandler {
	return &PublicationHandler{svc: svc}
}

// Create handles POST /publications
func (h *PublicationHandler) Create(c *gin.Context) {
	var req publication.CreatePublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid publication", err)
		return
	}

	p, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		if isReferenceNotFound(err) {
			response.NotFound(c, "Referenced media or post not found")
			return
		}
		response.InternalServerError(c, "Failed to create publication")
		return
	}

	response.Success(c, http.StatusCreated, p)
}

// FindAll handles GET /publications?published=bool&after=date
func (h *PublicationHandler) FindAll(c *gin.Context) {
	filter, ok := parseFindFilter(c)
	if !ok {
		return
	}

	publications, err := h.svc.FindAll(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, "Failed to list publications")
		return
	}

	response.Success(c, http.StatusOK, publications)
}

// FindOne handles GET /publications/:id
func (h *PublicationHandler) FindOne(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.svc.FindOne(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, publication.ErrPublicationNotFound) {
			response.NotFound(c, "Publication not found")
			return
		}
		response.InternalServerError(c, "Failed to get publication")
		return
	}

	response.Success(c, http.StatusOK, p)
}

// Update handles PATCH /publications/:id
func (h *PublicationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req publication.UpdatePublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid publication", err)
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, publication.ErrPublicationNotFound):
			response.NotFound(c, "Publication not found")
		case errors.Is(err, publication.ErrPublicationPublished):
			response.Forbidden(c, "Publication date has already passed")
		case isReferenceNotFound(err):
			response.NotFound(c, "Referenced media or post not found")
		default:
			response.InternalServerError(c, "Failed to update publication")
		}
		return
	}

	response.Success(c, http.StatusOK, p)
}

// Remove handles DELETE /publications/:id
func (h *PublicationHandler) Remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Remove(c.Request.Context(), id); err != nil {
		if errors.Is(err, publication.ErrPublicationNotFound) {
			response.NotFound(c, "Publication not found")
			return
		}
		response.InternalServerError(c, "Failed to delete publication")
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// isReferenceNotFound matches the untranslated media/post lookups failing
// inside the publication service.
func isReferenceNotFound(err error) bool {
	return errors.Is(err, media.ErrMediaNotFound) || errors.Is(err, post.ErrPostNotFound)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid publication id")
		return 0, false
	}
	return id, true
}

func parseFindFilter(c *gin.Context) (publication.FindFilter, bool) {
	var filter publication.FindFilter

	if raw, present := c.GetQuery("published"); present {
		switch raw {
		case "true":
			v := true
			filter.Published = &v
		case "false":
			v := false
			filter.Published = &v
		default:
			response.BadRequest(c, "published must be \"true\" or \"false\"")
			return filter, false
		}
	}

	if raw, present := c.GetQuery("after"); present {
		after, err := parseDate(raw)
		if err != nil {
			response.BadRequest(c, "after must be an ISO-8601 date")
			return filter, false
		}
		filter.After = &after
	}

	return filter, true
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
