package http

import "github.com/gin-gonic/gin"

// Register registers the project routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/projects", h.CreateProject)
	rg.GET("/projects", h.ListProjects)
	rg.GET("/projects/:id", h.GetProject)
	rg.PATCH("/projects/:id", h.RenameProject)
	rg.DELETE("/projects/:id", h.DeleteProject)
}
