package filenode

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	nodes := rg.Group("/file-nodes")
	{
		nodes.POST("", h.Create)
		nodes.GET("", h.List)
		nodes.GET("/:file_id", h.GetByID)
		nodes.PUT("/:file_id", h.Update)
		nodes.DELETE("/:file_id", h.Delete)
		nodes.POST("/:file_id/duplicate", h.Duplicate)
		nodes.POST("/:file_id/move", h.Move)
		nodes.POST("/:file_id/restore", h.Restore)
	}
}
