package syscatalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aurorah/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// UpsertAgent godoc
// @Summary Upsert an AI agent
// @Description 201 when inserted, 200 when overwritten or resurrected,
// @Description 200 "no change" when the stored row already matches.
// @Tags System catalog
// @Accept json
// @Produce json
// @Success 200,201 {object} map[string]interface{}
// @Router /system/ai-agents/upsert [post]
func (h *Handler) UpsertAgent(c *gin.Context) {
	var req UpsertAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	outcome, err := h.service.UpsertAgent(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	switch outcome {
	case UpsertCreated:
		response.Message(c, http.StatusCreated, "AI agent created")
	case UpsertUpdated:
		response.Message(c, http.StatusOK, "AI agent updated")
	default:
		response.Message(c, http.StatusOK, "AI agent already exists, no change")
	}
}

func (h *Handler) CreateAgent(c *gin.Context) {
	var req UpsertAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.CreateAgent(c.Request.Context(), req); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusCreated, "AI agent created")
}

func (h *Handler) ListAgents(c *gin.Context) {
	rows, err := h.service.ListAgents(c.Request.Context(), c.Query("ai_agent_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"items": rows, "count": len(rows)})
}

func (h *Handler) UpdateAgent(c *gin.Context) {
	var req UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.UpdateAgent(c.Request.Context(), c.Param("ai_agent_id"), req); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "AI agent updated")
}

func (h *Handler) DeleteAgent(c *gin.Context) {
	if err := h.service.DeleteAgent(c.Request.Context(), c.Param("ai_agent_id")); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "AI agent deleted")
}

func (h *Handler) UpsertModel(c *gin.Context) {
	var req UpsertModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	outcome, err := h.service.UpsertModel(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	switch outcome {
	case UpsertCreated:
		response.Message(c, http.StatusCreated, "LLM model created")
	case UpsertUpdated:
		response.Message(c, http.StatusOK, "LLM model updated")
	default:
		response.Message(c, http.StatusOK, "LLM model already exists, no change")
	}
}

func (h *Handler) CreateModel(c *gin.Context) {
	var req UpsertModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.CreateModel(c.Request.Context(), req); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusCreated, "LLM model created")
}

func (h *Handler) ListModels(c *gin.Context) {
	rows, err := h.service.ListModels(c.Request.Context(), c.Query("llm_model_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"items": rows, "count": len(rows)})
}

func (h *Handler) UpdateModel(c *gin.Context) {
	var req UpdateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.UpdateModel(c.Request.Context(), c.Param("llm_model_id"), req); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "LLM model updated")
}

func (h *Handler) DeleteModel(c *gin.Context) {
	if err := h.service.DeleteModel(c.Request.Context(), c.Param("llm_model_id")); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "LLM model deleted")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrAgentNotFound:
		response.Error(c, http.StatusNotFound, "AGENT_NOT_FOUND", "AI agent not found")
	case ErrAgentExists:
		response.Error(c, http.StatusConflict, "AGENT_EXISTS", "AI agent already exists")
	case ErrModelNotFound:
		response.Error(c, http.StatusNotFound, "MODEL_NOT_FOUND", "LLM model not found")
	case ErrModelExists:
		response.Error(c, http.StatusConflict, "MODEL_EXISTS", "LLM model already exists")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
