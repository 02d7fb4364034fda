package proofreading

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
	var req CreateProofreadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"proofreading_id": p.ProofreadingID})
}

func (h *Handler) List(c *gin.Context) {
	fileID, err := uuid.Parse(c.Query("file_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "file_id must be a UUID")
		return
	}

	items, err := h.service.ListByFile(c.Request.Context(), fileID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"items": items, "count": len(items)})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := proofreadingIDParam(c)
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

func (h *Handler) Update(c *gin.Context) {
	id, ok := proofreadingIDParam(c)
	if !ok {
		return
	}

	var req UpdateProofreadingRequest
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
	id, ok := proofreadingIDParam(c)
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
	case ErrFileNotFound:
		response.Error(c, http.StatusNotFound, "FILE_NOT_FOUND", "File not found")
	case ErrProofreadingNotFound:
		response.Error(c, http.StatusNotFound, "PROOFREADING_NOT_FOUND", "File proofreading not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}

func proofreadingIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("proofreading_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "proofreading_id must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}
