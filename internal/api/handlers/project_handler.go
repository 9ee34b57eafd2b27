package handlers

import (
	"net/http"

	"github.com/Marga-Ghale/portfolio-api/internal/logger"
	"github.com/Marga-Ghale/portfolio-api/internal/models"
	"github.com/Marga-Ghale/portfolio-api/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// Project Handler
// ============================================

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// List - List portfolio projects, optionally by niche
// GET /projects?niche=
func (h *ProjectHandler) List(c *gin.Context) {
	niche := c.Query("niche")

	projects, err := h.projectService.List(c.Request.Context(), niche)
	if err != nil {
		// Reads degrade to an empty list
		logger.Log.WithError(err).WithField("niche", niche).Warn("[Projects] Failed to fetch projects")
		projects = nil
	}

	response := make([]models.ProjectResponse, len(projects))
	for i, p := range projects {
		response[i] = toProjectResponse(p)
	}

	c.JSON(http.StatusOK, response)
}
