package catalog

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

// RegisterRoutes mounts the read side on a public group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/places", h.ListPlaces)
	rg.GET("/places/:id", h.GetPlace)
	rg.GET("/drivers", h.ListDrivers)
	rg.GET("/drivers/:id", h.GetDriver)
	rg.GET("/companies", h.ListCompanies)
	rg.GET("/languages", h.ListLanguages)
	rg.GET("/entertainment-types", h.ListEntertainmentTypes)
	rg.GET("/place-categories", h.ListPlaceCategories)
}

// RegisterAdminRoutes mounts the write side; expects an admin-gated group.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/places", h.CreatePlace)
	rg.PUT("/places/:id", h.UpdatePlace)
	rg.DELETE("/places/:id", h.DeletePlace)

	rg.POST("/drivers", h.CreateDriver)
	rg.PUT("/drivers/:id", h.UpdateDriver)
	rg.DELETE("/drivers/:id", h.DeleteDriver)

	rg.POST("/companies", h.CreateCompany)
	rg.DELETE("/companies/:id", h.DeleteCompany)

	rg.POST("/languages", h.CreateLanguage)
	rg.DELETE("/languages/:id", h.DeleteLanguage)

	rg.POST("/entertainment-types", h.CreateEntertainmentType)
	rg.DELETE("/entertainment-types/:id", h.DeleteEntertainmentType)

	rg.POST("/place-categories", h.CreatePlaceCategory)
	rg.DELETE("/place-categories/:id", h.DeletePlaceCategory)
}

func (h *Handler) CreatePlace(c *gin.Context) {
	var req PlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.CreatePlace(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"place": p})
}

func (h *Handler) GetPlace(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.service.GetPlace(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"place": p})
}

func (h *Handler) ListPlaces(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.service.ListPlaces(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"places": items})
}

func (h *Handler) UpdatePlace(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req PlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.UpdatePlace(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"place": p})
}

func (h *Handler) DeletePlace(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeletePlace(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) CreateDriver(c *gin.Context) {
	var req DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.CreateDriver(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"driver": d})
}

func (h *Handler) GetDriver(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	d, err := h.service.GetDriver(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"driver": d})
}

func (h *Handler) ListDrivers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.service.ListDrivers(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"drivers": items})
}

func (h *Handler) UpdateDriver(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.UpdateDriver(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"driver": d})
}

func (h *Handler) DeleteDriver(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteDriver(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) CreateCompany(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	company, err := h.service.CreateCompany(c.Request.Context(), c.GetInt64("user_id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"company": company})
}

func (h *Handler) ListCompanies(c *gin.Context) {
	items, err := h.service.ListCompanies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"companies": items})
}

func (h *Handler) DeleteCompany(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCompany(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) CreateLanguage(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.service.CreateLanguage(c.Request.Context(), c.GetInt64("user_id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"language": l})
}

func (h *Handler) ListLanguages(c *gin.Context) {
	items, err := h.service.ListLanguages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"languages": items})
}

func (h *Handler) DeleteLanguage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteLanguage(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) CreateEntertainmentType(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.CreateEntertainmentType(c.Request.Context(), c.GetInt64("user_id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"entertainment_type": e})
}

func (h *Handler) ListEntertainmentTypes(c *gin.Context) {
	items, err := h.service.ListEntertainmentTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"entertainment_types": items})
}

func (h *Handler) DeleteEntertainmentType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteEntertainmentType(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) CreatePlaceCategory(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	pc, err := h.service.CreatePlaceCategory(c.Request.Context(), c.GetInt64("user_id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"place_category": pc})
}

func (h *Handler) ListPlaceCategories(c *gin.Context) {
	items, err := h.service.ListPlaceCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"place_categories": items})
}

func (h *Handler) DeletePlaceCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeletePlaceCategory(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
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
		response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, domain.ErrPersistence):
		response.Error(c, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "Temporary storage failure, retry later")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
