package payment

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/:id/transactions", h.RecordTransaction)
	rg.GET("/bookings/:id/transactions", h.ListTransactions)
	rg.POST("/bookings/:id/refunds", h.Refund)
	rg.GET("/bookings/:id/payments", h.ListPayments)
}

func (h *Handler) RecordTransaction(c *gin.Context) {
	bookingID, ok := pathBookingID(c)
	if !ok {
		return
	}

	var req RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.RecordTransaction(c.Request.Context(), c.GetInt64("user_id"), c.GetString("role"), bookingID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if res.Duplicate {
		status = http.StatusOK
	}
	response.Success(c, status, res)
}

func (h *Handler) Refund(c *gin.Context) {
	bookingID, ok := pathBookingID(c)
	if !ok {
		return
	}

	var req RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Refund(c.Request.Context(), c.GetInt64("user_id"), c.GetString("role"), bookingID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) ListTransactions(c *gin.Context) {
	bookingID, ok := pathBookingID(c)
	if !ok {
		return
	}

	items, err := h.service.ListTransactions(c.Request.Context(), c.GetInt64("user_id"), c.GetString("role"), bookingID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"transactions": items})
}

func (h *Handler) ListPayments(c *gin.Context) {
	bookingID, ok := pathBookingID(c)
	if !ok {
		return
	}

	items, err := h.service.ListPayments(c.Request.Context(), c.GetInt64("user_id"), c.GetString("role"), bookingID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payments": items})
}

func pathBookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
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
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
	case errors.Is(err, domain.ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", err.Error())
	case errors.Is(err, domain.ErrConflict):
		response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, domain.ErrPersistence):
		response.Error(c, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "Temporary storage failure, retry later")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
