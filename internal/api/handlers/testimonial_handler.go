package handlers

import (
	"net/http"

	"github.com/Marga-Ghale/portfolio-api/internal/logger"
	"github.com/Marga-Ghale/portfolio-api/internal/models"
	"github.com/Marga-Ghale/portfolio-api/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// Testimonial Handler
// ============================================

type TestimonialHandler struct {
	testimonialService service.TestimonialService
}

func NewTestimonialHandler(testimonialService service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

// List - List client testimonials
// GET /testimonials
func (h *TestimonialHandler) List(c *gin.Context) {
	testimonials, err := h.testimonialService.List(c.Request.Context())
	if err != nil {
		logger.Log.WithError(err).Warn("[Testimonials] Failed to fetch testimonials")
		testimonials = nil
	}

	response := make([]models.TestimonialResponse, len(testimonials))
	for i, t := range testimonials {
		response[i] = toTestimonialResponse(t)
	}

	c.JSON(http.StatusOK, response)
}
