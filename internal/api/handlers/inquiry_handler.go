package handlers

import (
	"net/http"

	"github.com/Marga-Ghale/portfolio-api/internal/logger"
	"github.com/Marga-Ghale/portfolio-api/internal/models"
	"github.com/Marga-Ghale/portfolio-api/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// Inquiry Handler
// ============================================

type InquiryHandler struct {
	inquiryService service.InquiryService
}

func NewInquiryHandler(inquiryService service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

// Create - Submit a contact-form inquiry
// POST /inquiries
func (h *InquiryHandler) Create(c *gin.Context) {
	var req models.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	inquiry, err := h.inquiryService.Create(c.Request.Context(), &req)
	if err != nil {
		logger.Log.WithError(err).Error("[Inquiry] ❌ Failed to store inquiry")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.InquiryCreatedResponse{Status: "ok", ID: inquiry.ID})
}
