package handlers

import (
	"net/http"

	"stylehomes_backend/internal/apperrors"
	"stylehomes_backend/internal/dto"
	"stylehomes_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ConsultationHandler struct {
	*BaseHandler
	consultationService services.ConsultationService
}

func NewConsultationHandler(base *BaseHandler, consultationService services.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{
		BaseHandler:         base,
		consultationService: consultationService,
	}
}

func (h *ConsultationHandler) RegisterRoutes(r *gin.RouterGroup) {
	consultations := r.Group("/consultations")
	{
		consultations.POST("", h.CreateConsultation)
		consultations.GET("", h.GetAllConsultations)
		consultations.GET("/:id", h.GetConsultationByID)
		consultations.PUT("/:id/status", h.UpdateConsultationStatus)
		consultations.DELETE("/:id", h.DeleteConsultation)
	}
}

func (h *ConsultationHandler) CreateConsultation(c *gin.Context) {
	var req dto.CreateConsultationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	consultation, err := h.consultationService.CreateConsultation(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, consultation)
}

// GetAllConsultations lists records newest first. An optional ?status=
// query narrows the list to one status.
func (h *ConsultationHandler) GetAllConsultations(c *gin.Context) {
	var (
		consultations []*dto.ConsultationResponse
		err           error
	)

	if status := c.Query("status"); status != "" {
		consultations, err = h.consultationService.GetConsultationsByStatus(c.Request.Context(), h.GetDB(c), status)
	} else {
		consultations, err = h.consultationService.GetAllConsultations(c.Request.Context(), h.GetDB(c))
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, consultations)
}

func (h *ConsultationHandler) GetConsultationByID(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	consultation, err := h.consultationService.GetConsultationByID(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, consultation)
}

func (h *ConsultationHandler) UpdateConsultationStatus(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	status := c.Query("status")
	if status == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("status query parameter is required"))
		return
	}

	consultation, err := h.consultationService.UpdateConsultationStatus(c.Request.Context(), h.GetDB(c), id, status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, consultation)
}

func (h *ConsultationHandler) DeleteConsultation(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.consultationService.DeleteConsultation(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
