package history

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	hist := rg.Group("/file-edit-history")
	{
		hist.POST("", h.RecordEdit)
		hist.GET("/:file_id", h.ListHistory)
	}

	cps := rg.Group("/file-checkpoints")
	{
		cps.POST("", h.CreateCheckpoint)
		cps.GET("/:file_id", h.ListCheckpoints)
	}
}
