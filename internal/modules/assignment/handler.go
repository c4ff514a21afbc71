package assignment

import (
	"errors"
	"net/http"
	"strconv"

	"tourism/internal/domain"
	"tourism/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects an admin-gated group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assignments", h.Assign)
	rg.GET("/assignments/:id", h.Get)
	rg.POST("/assignments/:id/release", h.Release)
	rg.GET("/drivers/:id/assignments", h.ListByDriver)
}

func (h *Handler) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.Assign(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"assignment": a})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"assignment": a})
}

func (h *Handler) Release(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	a, err := h.service.Release(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"assignment": a})
}

func (h *Handler) ListByDriver(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	activeOnly := c.DefaultQuery("active", "false") == "true"

	items, err := h.service.ListByDriver(c.Request.Context(), id, activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"assignments": items})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrConflict):
		response.Error(c, http.StatusConflict, "ASSIGNMENT_CONFLICT", err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", err.Error())
	case errors.Is(err, domain.ErrPersistence):
		response.Error(c, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "Temporary storage failure, retry later")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
