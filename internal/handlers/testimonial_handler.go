package handlers

import (
	"net/http"

	"stylehomes_backend/internal/dto"
	"stylehomes_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	*BaseHandler
	testimonialService services.TestimonialService
}

func NewTestimonialHandler(base *BaseHandler, testimonialService services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{
		BaseHandler:        base,
		testimonialService: testimonialService,
	}
}

func (h *TestimonialHandler) RegisterRoutes(r *gin.RouterGroup) {
	testimonials := r.Group("/testimonials")
	{
		testimonials.POST("", h.CreateTestimonial)
		testimonials.GET("", h.GetApprovedTestimonials)
		testimonials.GET("/all", h.GetAllTestimonials)
		testimonials.PUT("/:id/approve", h.ApproveTestimonial)
		testimonials.DELETE("/:id", h.DeleteTestimonial)
	}
}

func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var req dto.CreateTestimonialRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	testimonial, err := h.testimonialService.CreateTestimonial(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, testimonial)
}

func (h *TestimonialHandler) GetApprovedTestimonials(c *gin.Context) {
	testimonials, err := h.testimonialService.GetApprovedTestimonials(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, testimonials)
}

func (h *TestimonialHandler) GetAllTestimonials(c *gin.Context) {
	testimonials, err := h.testimonialService.GetAllTestimonials(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, testimonials)
}

func (h *TestimonialHandler) ApproveTestimonial(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	testimonial, err := h.testimonialService.ApproveTestimonial(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, testimonial)
}

func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.testimonialService.DeleteTestimonial(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
