package translation

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	translations := rg.Group("/file-translations")
	{
		translations.POST("", h.Create)
		translations.GET("", h.List)
		translations.GET("/:translation_id", h.GetByID)
		translations.PUT("/:translation_id", h.Update)
		translations.DELETE("/:translation_id", h.Delete)
	}
}
