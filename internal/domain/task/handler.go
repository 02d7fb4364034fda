package task

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
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, t)
}

// Open godoc
// @Summary Open a file task, creating it on first open
// @Description Returns the existing task, or fetches the node's file_url,
// @Description segments the text and creates the task + original.
// @Tags File tasks
// @Produce json
// @Param file_id path string true "File ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404,422,502 {object} map[string]interface{}
// @Router /file-tasks/open/{file_id} [post]
func (h *Handler) Open(c *gin.Context) {
	fileID, ok := fileIDParam(c)
	if !ok {
		return
	}

	t, err := h.service.Open(c.Request.Context(), fileID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, t)
}

func (h *Handler) GetByFileID(c *gin.Context) {
	fileID, ok := fileIDParam(c)
	if !ok {
		return
	}

	t, err := h.service.GetByFileID(c.Request.Context(), fileID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, t)
}

func (h *Handler) GetDetails(c *gin.Context) {
	fileID, ok := fileIDParam(c)
	if !ok {
		return
	}

	d, err := h.service.GetDetails(c.Request.Context(), fileID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, d)
}

func (h *Handler) Update(c *gin.Context) {
	fileID, ok := fileIDParam(c)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), fileID, req); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "OK")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrFileNotFound:
		response.Error(c, http.StatusNotFound, "FILE_NOT_FOUND", "File not found")
	case ErrTaskNotFound:
		response.Error(c, http.StatusNotFound, "TASK_NOT_FOUND", "File task not found")
	case ErrTaskExists:
		response.Error(c, http.StatusConflict, "TASK_EXISTS", "Task already exists for this file")
	case ErrOriginalExists:
		response.Error(c, http.StatusConflict, "ORIGINAL_EXISTS", "File original already exists")
	case ErrNoFileURL:
		response.Error(c, http.StatusUnprocessableEntity, "NO_FILE_URL", "File has no URL")
	case ErrFetchFailed:
		response.Error(c, http.StatusBadGateway, "FETCH_FAILED", "Failed to read file from URL")
	case ErrPresetNotFound:
		response.Error(c, http.StatusNotFound, "PRESET_NOT_FOUND", "File preset not found")
	case ErrTranslationNotFound:
		response.Error(c, http.StatusNotFound, "TRANSLATION_NOT_FOUND", "File translation not found")
	case ErrProofreadingNotFound:
		response.Error(c, http.StatusNotFound, "PROOFREADING_NOT_FOUND", "File proofreading not found")
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
