package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sarisense/sarisense-api/internal/application/service"
	"github.com/sarisense/sarisense-api/internal/presentation/http/dto/response"
)

// AnalyticsHandler handles analytics HTTP requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Dashboard returns the full analytics snapshot
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	snapshot, err := h.analyticsService.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard retrieved successfully", snapshot)
}

// Insights returns the current recommendations
func (h *AnalyticsHandler) Insights(c *gin.Context) {
	insights, err := h.analyticsService.Insights(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Insights retrieved successfully", insights)
}

// CreditRisks returns the per-customer credit risk classification
func (h *AnalyticsHandler) CreditRisks(c *gin.Context) {
	risks, err := h.analyticsService.CreditRisks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Credit risks retrieved successfully", risks)
}

// Refresh forces a recompute of the analytics snapshot
func (h *AnalyticsHandler) Refresh(c *gin.Context) {
	snapshot, err := h.analyticsService.Refresh(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Analytics refreshed successfully", snapshot)
}
