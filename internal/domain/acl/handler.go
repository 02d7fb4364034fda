package acl

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
	var req CreateACLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, a)
}

// GetByFile returns all grants on a file; pass principal_id to narrow the
// result to a single grant.
func (h *Handler) GetByFile(c *gin.Context) {
	fileID, err := uuid.Parse(c.Param("file_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "file_id must be a UUID")
		return
	}

	var principalID *uuid.UUID
	if raw := c.Query("principal_id"); raw != "" {
		pid, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "principal_id must be a UUID")
			return
		}
		principalID = &pid
	}

	grants, err := h.service.ListByFile(c.Request.Context(), fileID, principalID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"items": grants, "count": len(grants)})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateACLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.UpdateRole(c.Request.Context(), req); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "OK")
}

func (h *Handler) Delete(c *gin.Context) {
	fileID, err := uuid.Parse(c.Param("file_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "file_id must be a UUID")
		return
	}
	principalID, err := uuid.Parse(c.Param("principal_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "principal_id must be a UUID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), fileID, principalID); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "OK")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrFileNotFound:
		response.Error(c, http.StatusNotFound, "FILE_NOT_FOUND", "File not found")
	case ErrACLNotFound:
		response.Error(c, http.StatusNotFound, "ACL_NOT_FOUND", "File ACL not found")
	case ErrACLExists:
		response.Error(c, http.StatusConflict, "ACL_CONFLICT", "File ACL already exists")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
