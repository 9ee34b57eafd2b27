package handlers

import (
	"net/http"

	"github.com/Marga-Ghale/portfolio-api/internal/models"
	"github.com/Marga-Ghale/portfolio-api/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// System Handler
// ============================================

type SystemHandler struct {
	diagnosticsService service.DiagnosticsService
}

func NewSystemHandler(diagnosticsService service.DiagnosticsService) *SystemHandler {
	return &SystemHandler{diagnosticsService: diagnosticsService}
}

// Root - Liveness message
// GET /
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Mohamad Jamalo API Running"})
}

// Hello - Static greeting
// GET /api/hello
func (h *SystemHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Hello from the backend API!"})
}

// Test - Connectivity diagnostics, always 200
// GET /test
func (h *SystemHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, h.diagnosticsService.Report(c.Request.Context()))
}

// Schema - Advertised model names
// GET /schema
func (h *SystemHandler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, models.SchemaResponse{Models: models.ModelNames})
}

// Health - Dependency summary
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.diagnosticsService.Health(c.Request.Context()))
}
