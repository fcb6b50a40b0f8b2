package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sarisense/sarisense-api/internal/application/service"
	"github.com/sarisense/sarisense-api/internal/domain/enum"
	"github.com/sarisense/sarisense-api/internal/domain/repository"
	"github.com/sarisense/sarisense-api/internal/presentation/http/dto/request"
	"github.com/sarisense/sarisense-api/internal/presentation/http/dto/response"
	"github.com/sarisense/sarisense-api/pkg/pagination"
)

// CreditHandler handles utang HTTP requests
type CreditHandler struct {
	creditService *service.CreditService
}

// NewCreditHandler creates a new credit handler
func NewCreditHandler(creditService *service.CreditService) *CreditHandler {
	return &CreditHandler{creditService: creditService}
}

// List handles listing utang records across customers
func (h *CreditHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	params := &repository.CreditFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
	}

	if raw := c.Query("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		params.CustomerID = &customerID
	}
	if raw := c.Query("status"); raw != "" {
		status, ok := enum.ParsePaymentStatus(raw)
		if !ok {
			response.BadRequest(c, "Invalid status")
			return
		}
		params.Status = &status
	}

	result, err := h.creditService.ListCredits(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Credits retrieved successfully", result)
}

// ListByCustomer handles listing a customer's utang history
func (h *CreditHandler) ListByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	credits, err := h.creditService.ListCustomerCredits(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Credits retrieved successfully", credits)
}

// Create handles recording a standalone utang
func (h *CreditHandler) Create(c *gin.Context) {
	var req request.CreateCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	credit, err := h.creditService.CreateCredit(c.Request.Context(), &service.CreateCreditInput{
		CustomerID: customerID,
		Amount:     req.Amount,
		DueDate:    req.DueDate,
		Notes:      req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Credit recorded successfully", credit)
}

// Pay settles every outstanding credit of a customer
func (h *CreditHandler) Pay(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	result, err := h.creditService.RecordPayment(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded successfully", result)
}

// Cancel voids an obligation recorded in error
func (h *CreditHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid credit ID")
		return
	}

	credit, err := h.creditService.CancelCredit(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Credit cancelled successfully", credit)
}

// MarkOverdue sweeps pending credits past their due date
func (h *CreditHandler) MarkOverdue(c *gin.Context) {
	result, err := h.creditService.MarkOverdue(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Overdue sweep completed", result)
}
