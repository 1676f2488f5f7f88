package http

import "github.com/gin-gonic/gin"

// Register registers the build routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/projects/:id/build", h.StartBuild)
	rg.GET("/projects/:id/history", h.GetHistory)
	rg.GET("/builds/:id/status", h.GetStatus)
	rg.GET("/builds/:id/logs", h.GetLogs)
	rg.DELETE("/builds/:id", h.DeleteBuild)
}
