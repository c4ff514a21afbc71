package audit

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
	rg.GET("/audit", h.List)
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	records, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrPersistence) {
			response.Error(c, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "Temporary storage failure, retry later")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list audit records")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"records": records})
}
