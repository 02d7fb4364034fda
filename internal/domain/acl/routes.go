package acl

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	grants := rg.Group("/file-acl")
	{
		grants.POST("", h.Create)
		grants.GET("/:file_id", h.GetByFile)
		grants.PUT("", h.Update)
		grants.DELETE("/:file_id/:principal_id", h.Delete)
	}
}
