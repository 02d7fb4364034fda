package original

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	originals := rg.Group("/file-original")
	{
		originals.POST("", h.Create)
		originals.GET("", h.List)
		originals.PUT("/:original_id", h.Update)
	}
}
