package original

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
	var req CreateOriginalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	o, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"original_id": o.OriginalID})
}

// List filters by file_id and/or original_id query parameters.
func (h *Handler) List(c *gin.Context) {
	var fileID, originalID *uuid.UUID
	if raw := c.Query("file_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "file_id must be a UUID")
			return
		}
		fileID = &id
	}
	if raw := c.Query("original_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "original_id must be a UUID")
			return
		}
		originalID = &id
	}

	rows, err := h.service.List(c.Request.Context(), fileID, originalID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"items": rows, "count": len(rows)})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("original_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "original_id must be a UUID")
		return
	}

	var req UpdateOriginalRequest
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

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrFileNotFound:
		response.Error(c, http.StatusNotFound, "FILE_NOT_FOUND", "File not found")
	case ErrOriginalNotFound:
		response.Error(c, http.StatusNotFound, "ORIGINAL_NOT_FOUND", "File original not found")
	case ErrOriginalExists:
		response.Error(c, http.StatusConflict, "ORIGINAL_CONFLICT", "File original already exists")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
