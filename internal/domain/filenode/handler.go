package filenode

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aurorah/internal/pkg/response"
	"aurorah/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create godoc
// @Summary Create a file or folder node
// @Tags File nodes
// @Accept json
// @Produce json
// @Param request body CreateFileNodeRequest true "Node attributes"
// @Success 201 {object} map[string]interface{}
// @Failure 400,404,409 {object} map[string]interface{}
// @Router /file-nodes [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateFileNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	n, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"file_id": n.FileID})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := fileIDParam(c)
	if !ok {
		return
	}

	n, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, n)
}

// List godoc
// @Summary List file nodes
// @Description option selects the view: all-files (default), shared-files, trash-files, nodes
// @Tags File nodes
// @Produce json
// @Param owner_id query string true "Owner / principal ID"
// @Param option query string false "all-files | shared-files | trash-files | nodes"
// @Param parent_file_id query string false "Parent node (nodes option only, empty = root)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /file-nodes [get]
func (h *Handler) List(c *gin.Context) {
	q := ListFileNodesQuery{
		OwnerID: c.Query("owner_id"),
		Option:  c.Query("option"),
	}
	if raw := c.Query("parent_file_id"); raw != "" {
		pid, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "parent_file_id must be a UUID")
			return
		}
		q.ParentFileID = &pid
	}
	if details := validator.Validate(q); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters", details)
		return
	}

	nodes, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"items": nodes, "count": len(nodes)})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := fileIDParam(c)
	if !ok {
		return
	}

	var req UpdateFileNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, req); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "OK")
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := fileIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "OK")
}

func (h *Handler) Duplicate(c *gin.Context) {
	id, ok := fileIDParam(c)
	if !ok {
		return
	}

	dup, err := h.service.Duplicate(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"file_id":   dup.FileID,
		"file_name": dup.FileName,
	})
}

func (h *Handler) Move(c *gin.Context) {
	id, ok := fileIDParam(c)
	if !ok {
		return
	}

	var req MoveFileNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.Move(c.Request.Context(), id, req.NewParentFileID); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "OK")
}

func (h *Handler) Restore(c *gin.Context) {
	id, ok := fileIDParam(c)
	if !ok {
		return
	}

	n, err := h.service.Restore(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"file_id": n.FileID})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrFileNotFound:
		response.Error(c, http.StatusNotFound, "FILE_NOT_FOUND", "File not found")
	case ErrParentNotFound:
		response.Error(c, http.StatusNotFound, "PARENT_NOT_FOUND", "Parent folder not found")
	case ErrNameExists:
		response.Error(c, http.StatusConflict, "NAME_CONFLICT", "Folder/file name already exists")
	case ErrFolderNotEmpty:
		response.Error(c, http.StatusConflict, "FOLDER_NOT_EMPTY", "Folder is not empty")
	case ErrMoveIntoSelf:
		response.Error(c, http.StatusConflict, "MOVE_CONFLICT", "Cannot move a node into itself")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request parameters")
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
