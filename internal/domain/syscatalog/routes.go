package syscatalog

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	agents := rg.Group("/system/ai-agents")
	{
		agents.POST("/upsert", h.UpsertAgent)
		agents.POST("", h.CreateAgent)
		agents.GET("", h.ListAgents)
		agents.PUT("/:ai_agent_id", h.UpdateAgent)
		agents.DELETE("/:ai_agent_id", h.DeleteAgent)
	}

	models := rg.Group("/system/llm-models")
	{
		models.POST("/upsert", h.UpsertModel)
		models.POST("", h.CreateModel)
		models.GET("", h.ListModels)
		models.PUT("/:llm_model_id", h.UpdateModel)
		models.DELETE("/:llm_model_id", h.DeleteModel)
	}
}
