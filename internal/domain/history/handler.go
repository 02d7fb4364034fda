package history

import (
	"net/http"
	"strconv"

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

func (h *Handler) RecordEdit(c *gin.Context) {
	var req RecordEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.RecordEdit(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res)
}

// ListHistory godoc
// @Summary List a file's edit history
// @Description Newest first. target_type, target_id and marker_number
// @Description filters combine freely.
// @Tags Edit history
// @Produce json
// @Param file_id path string true "File ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /file-edit-history/{file_id} [get]
func (h *Handler) ListHistory(c *gin.Context) {
	fileID, ok := fileIDParam(c)
	if !ok {
		return
	}

	var f HistoryFilter
	f.TargetType = c.Query("target_type")
	switch f.TargetType {
	case "", TargetOriginal, TargetTranslation, TargetProofreading:
	default:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "target_type must be original, translation or proofreading")
		return
	}
	if raw := c.Query("target_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "target_id must be a UUID")
			return
		}
		f.TargetID = &id
	}
	if raw := c.Query("marker_number"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "marker_number must be a positive integer")
			return
		}
		f.MarkerNumber = &n
	}

	rows, err := h.service.ListHistory(c.Request.Context(), fileID, f)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"items": rows, "count": len(rows)})
}

func (h *Handler) CreateCheckpoint(c *gin.Context) {
	var req CreateCheckpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cp, err := h.service.CreateCheckpoint(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"checkpoint_id": cp.CheckpointID})
}

func (h *Handler) ListCheckpoints(c *gin.Context) {
	fileID, ok := fileIDParam(c)
	if !ok {
		return
	}

	var checkpointID *uuid.UUID
	if raw := c.Query("checkpoint_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "checkpoint_id must be a UUID")
			return
		}
		checkpointID = &id
	}

	rows, err := h.service.ListCheckpoints(c.Request.Context(), fileID, checkpointID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"items": rows, "count": len(rows)})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrFileNotFound:
		response.Error(c, http.StatusNotFound, "FILE_NOT_FOUND", "File not found")
	case ErrHistoryNotFound:
		response.Error(c, http.StatusNotFound, "HISTORY_NOT_FOUND", "Edit history not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}

func fileIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("file_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "file_id must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}
