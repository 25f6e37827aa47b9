package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/okushnir/checkline-api/internal/application/service"
	"github.com/okushnir/checkline-api/internal/domain/enum"
	domainRepo "github.com/okushnir/checkline-api/internal/domain/repository"
	"github.com/okushnir/checkline-api/internal/presentation/http/dto/request"
	"github.com/okushnir/checkline-api/internal/presentation/http/dto/response"
	"github.com/okushnir/checkline-api/pkg/pagination"
	"github.com/okushnir/checkline-api/pkg/utils"
)

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Create handles receipt creation
// @Summary Create receipt
// @Description Compute totals for the submitted products and persist the receipt
// @Tags receipts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateReceiptRequest true "Receipt data"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /receipts [post]
func (h *ReceiptHandler) Create(c *gin.Context) {
	userID, err := GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateReceiptInput{
		Products: make([]service.ProductInput, 0, len(req.Products)),
		Payment: service.PaymentInput{
			Type:   req.Payment.Type,
			Amount: req.Payment.Amount,
		},
	}
	for _, p := range req.Products {
		input.Products = append(input.Products, service.ProductInput{
			Name:     p.Name,
			Price:    p.Price,
			Quantity: p.Quantity,
		})
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receipt created", response.NewReceiptResponse(receipt))
}

// Get returns one of the user's receipts
// @Summary Get receipt
// @Tags receipts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Receipt ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /receipts/{id} [get]
func (h *ReceiptHandler) Get(c *gin.Context) {
	userID, err := GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	receiptID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), userID, receiptID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved", response.NewReceiptResponse(receipt))
}

// List returns the user's receipts, filtered and paginated
// @Summary List receipts
// @Tags receipts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param start_date query string false "Created at or after (RFC 3339)"
// @Param end_date query string false "Created at or before (RFC 3339)"
// @Param payment_type query string false "cash or card"
// @Param min_total query number false "Minimum receipt total"
// @Param max_total query number false "Maximum receipt total"
// @Success 200 {object} response.APIResponse
// @Router /receipts [get]
func (h *ReceiptHandler) List(c *gin.Context) {
	userID, err := GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	params, err := parseReceiptFilters(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.receiptService.ListReceipts(c.Request.Context(), userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Receipts retrieved", &pagination.PaginatedResult[response.ReceiptResponse]{
		Items:      response.NewReceiptListResponse(result.Items),
		Pagination: result.Pagination,
	})
}

// Public renders the receipt as plain text without authentication
// @Summary Public receipt view
// @Description Fixed-width text rendering of a receipt, shareable by ID
// @Tags receipts
// @Produce plain
// @Param id path string true "Receipt ID"
// @Success 200 {string} string
// @Failure 404 {object} response.APIResponse
// @Router /receipts/{id}/public [get]
func (h *ReceiptHandler) Public(c *gin.Context) {
	receiptID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	text, err := h.receiptService.RenderPublicReceipt(c.Request.Context(), receiptID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

type filterError string

func (e filterError) Error() string { return string(e) }

func parseReceiptFilters(c *gin.Context) (*domainRepo.ReceiptFilterParams, error) {
	params := &domainRepo.ReceiptFilterParams{
		Pagination: pagination.DefaultPagination(),
	}

	if v := c.Query("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return nil, filterError("Invalid page")
		}
		params.Pagination.Page = page
	}
	if v := c.Query("per_page"); v != "" {
		perPage, err := strconv.Atoi(v)
		if err != nil {
			return nil, filterError("Invalid per_page")
		}
		params.Pagination.PerPage = perPage
	}
	if v := c.Query("start_date"); v != "" {
		t, err := parseFilterTime(v)
		if err != nil {
			return nil, filterError("Invalid start_date")
		}
		params.StartDate = &t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := parseFilterTime(v)
		if err != nil {
			return nil, filterError("Invalid end_date")
		}
		params.EndDate = &t
	}
	if v := c.Query("payment_type"); v != "" {
		paymentType := enum.PaymentType(v)
		if !paymentType.Valid() {
			return nil, filterError("Invalid payment_type")
		}
		params.PaymentType = &paymentType
	}
	if v := c.Query("min_total"); v != "" {
		minTotal, err := decimal.NewFromString(v)
		if err != nil {
			return nil, filterError("Invalid min_total")
		}
		params.MinTotal = &minTotal
	}
	if v := c.Query("max_total"); v != "" {
		maxTotal, err := decimal.NewFromString(v)
		if err != nil {
			return nil, filterError("Invalid max_total")
		}
		params.MaxTotal = &maxTotal
	}

	return params, nil
}

// parseFilterTime accepts RFC 3339 timestamps and bare dates
func parseFilterTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
