package preset

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aurorah/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"file_preset_id": p.FilePresetID})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := presetIDParam(c)
	if !ok {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p)
}

func (h *Handler) List(c *gin.Context) {
	principalID, err := uuid.Parse(c.Query("principal_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "principal_id must be a UUID")
		return
	}

	presets, err := h.service.ListByPrincipal(c.Request.Context(), principalID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"items": presets, "count": len(presets)})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := presetIDParam(c)
	if !ok {
		return
	}

	var req UpdatePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "OK")
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := presetIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "OK")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrPresetNotFound:
		response.Error(c, http.StatusNotFound, "PRESET_NOT_FOUND", "File preset not found")
	case ErrPresetExists:
		response.Error(c, http.StatusConflict, "PRESET_CONFLICT", "File preset already exists")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}

func presetIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("file_preset_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "file_preset_id must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}
