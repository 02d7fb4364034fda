package preset

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	presets := rg.Group("/file-presets")
	{
		presets.POST("", h.Create)
		presets.GET("", h.List)
		presets.GET("/:file_preset_id", h.GetByID)
		presets.PUT("/:file_preset_id", h.Update)
		presets.DELETE("/:file_preset_id", h.Delete)
	}
}
