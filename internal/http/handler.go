package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/billboard-rentals/internal/http/middleware"
	"github.com/nurpe/billboard-rentals/internal/model"
	"github.com/nurpe/billboard-rentals/internal/pricing"
	"github.com/nurpe/billboard-rentals/internal/schedule"
	"github.com/nurpe/billboard-rentals/internal/service"
)

type Handler struct {
	contracts  *service.ContractService
	billboards *service.BillboardService
	rents      *service.RentService
	prices     *service.PricingService
	log        zerolog.Logger
}

func NewHandler(
	contracts *service.ContractService,
	billboards *service.BillboardService,
	rents *service.RentService,
	prices *service.PricingService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		contracts:  contracts,
		billboards: billboards,
		rents:      rents,
		prices:     prices,
		log:        log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := router.Group("/")
	protected.Use(authMiddleware)

	protected.POST("/contracts/quote", h.quoteContract)
	protected.POST("/contracts", h.createContract)
	protected.POST("/contracts/import", h.importContracts)
	protected.GET("/contracts", h.listContracts)
	protected.GET("/contracts/export", h.exportContracts)
	protected.GET("/contracts/:id", h.getContract)
	protected.DELETE("/contracts/:id", h.deleteContract)
	protected.GET("/contracts/:id/document", h.contractDocument)

	protected.GET("/billboards", h.listBillboards)
	protected.POST("/billboards", h.createBillboard)
	protected.POST("/billboards/import", h.importBillboards)
	protected.POST("/billboards/:id/rent", h.applyRent)
	protected.GET("/billboards/:id/ledger", h.billboardLedger)

	protected.GET("/pricing/rows", h.pricingRows)
	protected.GET("/pricing/export", h.exportPricing)
	protected.POST("/pricing/resolve", h.resolvePrice)
	protected.POST("/pricing/refresh", h.refreshPricing)
	protected.GET("/customers/categories", h.customerCategories)
}

// requireManager guards destructive and bulk routes. The principal was placed
// on the context by the auth middleware.
func (h *Handler) requireManager(c *gin.Context) bool {
	principal, ok := middleware.MustPrincipal(c)
	if !ok || !principal.IsManager() {
		h.handleError(c, fmt.Errorf("%w: manager role required", service.ErrPermissionDenied))
		return false
	}
	return true
}

type installationItem struct {
	BillboardID string  `json:"billboard_id" binding:"required"`
	Price       float64 `json:"price"`
}

type installmentItem struct {
	Amount      float64 `json:"amount"`
	PaymentType string  `json:"payment_type"`
	Description string  `json:"description"`
	DueDate     string  `json:"due_date"`
}

type quoteRequest struct {
	BillboardIDs     []string           `json:"billboard_ids" binding:"required"`
	CustomerCategory string             `json:"customer_category"`
	Months           int                `json:"months" binding:"required"`
	DiscountType     string             `json:"discount_type"`
	DiscountValue    float64            `json:"discount_value"`
	OperatingFeeRate *float64           `json:"operating_fee_rate"`
	Installation     []installationItem `json:"installation"`
	InstallmentCount int                `json:"installment_count"`
	StartDate        string             `json:"start_date"`
}

func (r quoteRequest) toInput() (service.QuoteInput, error) {
	ids := make([]uuid.UUID, 0, len(r.BillboardIDs))
	for _, raw := range r.BillboardIDs {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return service.QuoteInput{}, err
		}
		ids = append(ids, id)
	}

	installation := make([]service.InstallationInput, 0, len(r.Installation))
	for _, item := range r.Installation {
		id, err := uuid.Parse(strings.TrimSpace(item.BillboardID))
		if err != nil {
			return service.QuoteInput{}, err
		}
		installation = append(installation, service.InstallationInput{BillboardID: id, Price: item.Price})
	}

	var start time.Time
	if r.StartDate != "" {
		parsed, err := parseDate(r.StartDate)
		if err != nil {
			return service.QuoteInput{}, err
		}
		start = parsed
	}

	return service.QuoteInput{
		BillboardIDs:     ids,
		CustomerCategory: r.CustomerCategory,
		Months:           r.Months,
		DiscountType:     r.DiscountType,
		DiscountValue:    r.DiscountValue,
		OperatingFeeRate: r.OperatingFeeRate,
		Installation:     installation,
		InstallmentCount: r.InstallmentCount,
		StartAt:          start,
	}, nil
}

func (h *Handler) quoteContract(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid billboard id or date"})
		return
	}

	quote, err := h.contracts.Quote(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

type createContractRequest struct {
	quoteRequest
	Number       string            `json:"number" binding:"required"`
	CustomerID   string            `json:"customer_id"`
	CustomerName string            `json:"customer_name" binding:"required"`
	AdType       string            `json:"ad_type"`
	EndDate      string            `json:"end_date"`
	Installments []installmentItem `json:"installments"`
}

func (h *Handler) createContract(c *gin.Context) {
	var req createContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	quoteInput, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid billboard id or date"})
		return
	}

	input := service.CreateContractInput{
		QuoteInput:   quoteInput,
		Number:       req.Number,
		CustomerName: req.CustomerName,
		AdType:       req.AdType,
	}
	if req.CustomerID != "" {
		id, err := uuid.Parse(req.CustomerID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer_id"})
			return
		}
		input.CustomerID = &id
	}
	if req.EndDate != "" {
		end, err := parseDate(req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
			return
		}
		input.EndAt = end
	}
	for _, item := range req.Installments {
		inst := schedule.Installment{
			Amount:      item.Amount,
			PaymentType: item.PaymentType,
			Description: item.Description,
		}
		if item.DueDate != "" {
			due, err := parseDate(item.DueDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid installment due_date"})
				return
			}
			inst.DueDate = due
		}
		input.Installments = append(input.Installments, inst)
	}

	saved, err := h.contracts.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *Handler) importContracts(c *gin.Context) {
	if !h.requireManager(c) {
		return
	}
	var records []map[string]any
	if err := c.ShouldBindJSON(&records); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	imported, err := h.contracts.Import(c.Request.Context(), records)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, imported)
}

func (h *Handler) listContracts(c *gin.Context) {
	var status *model.ContractStatus
	if raw := c.Query("status"); raw != "" {
		value := model.ContractStatus(strings.ToUpper(raw))
		status = &value
	}
	contracts, err := h.contracts.List(c.Request.Context(), status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts)
}

func (h *Handler) getContract(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	contract, err := h.contracts.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (h *Handler) deleteContract(c *gin.Context) {
	if !h.requireManager(c) {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.contracts.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) contractDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	result, err := h.contracts.Document(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func (h *Handler) exportContracts(c *gin.Context) {
	var status *model.ContractStatus
	if raw := c.Query("status"); raw != "" {
		value := model.ContractStatus(strings.ToUpper(raw))
		status = &value
	}
	result, err := h.contracts.ExportExcel(c.Request.Context(), status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	const xlsxType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, xlsxType, result.Content)
}

type createBillboardRequest struct {
	Name             string   `json:"name" binding:"required"`
	Location         string   `json:"location"`
	Municipality     string   `json:"municipality"`
	Size             string   `json:"size" binding:"required"`
	Level            string   `json:"level"`
	Faces            int      `json:"faces"`
	IsPartnership    bool     `json:"is_partnership"`
	Capital          float64  `json:"capital"`
	PartnerCompanies []string `json:"partner_companies"`
}

func (h *Handler) createBillboard(c *gin.Context) {
	var req createBillboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := h.billboards.Create(c.Request.Context(), model.Billboard{
		Name:             req.Name,
		Location:         req.Location,
		Municipality:     req.Municipality,
		Size:             req.Size,
		Level:            req.Level,
		Faces:            req.Faces,
		IsPartnership:    req.IsPartnership,
		Capital:          req.Capital,
		PartnerCompanies: req.PartnerCompanies,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *Handler) importBillboards(c *gin.Context) {
	if !h.requireManager(c) {
		return
	}
	var records []map[string]any
	if err := c.ShouldBindJSON(&records); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	imported, err := h.billboards.Import(c.Request.Context(), records)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, imported)
}

func (h *Handler) listBillboards(c *gin.Context) {
	var status *model.BillboardStatus
	if raw := c.Query("status"); raw != "" {
		value := model.BillboardStatus(strings.ToUpper(raw))
		status = &value
	}
	boards, err := h.billboards.List(c.Request.Context(), status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, boards)
}

type applyRentRequest struct {
	Amount     float64 `json:"amount" binding:"required"`
	ContractID string  `json:"contract_id"`
}

func (h *Handler) applyRent(c *gin.Context) {
	billboardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req applyRentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input := service.ApplyRentInput{BillboardID: billboardID, Amount: req.Amount}
	if req.ContractID != "" {
		contractID, err := uuid.Parse(req.ContractID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract_id"})
			return
		}
		input.ContractID = &contractID
	}

	result, err := h.rents.ApplyRent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) billboardLedger(c *gin.Context) {
	billboardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	entries, err := h.rents.Ledger(c.Request.Context(), billboardID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *Handler) pricingRows(c *gin.Context) {
	rows, err := h.prices.Rows(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type resolvePriceRequest struct {
	Size     string `json:"size" binding:"required"`
	Level    string `json:"level"`
	Category string `json:"category" binding:"required"`
	Months   int    `json:"months"`
	Daily    bool   `json:"daily"`
}

func (h *Handler) resolvePrice(c *gin.Context) {
	var req resolvePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.prices.Resolve(c.Request.Context(), service.ResolveInput{
		Size:     req.Size,
		Level:    req.Level,
		Category: req.Category,
		Months:   req.Months,
		Daily:    req.Daily,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) exportPricing(c *gin.Context) {
	result, err := h.prices.ExportExcel(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	const xlsxType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, xlsxType, result.Content)
}

func (h *Handler) refreshPricing(c *gin.Context) {
	if err := h.prices.Refresh(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) customerCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.prices.Categories(c.Request.Context())})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrNotShared):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, pricing.ErrNoPrice):
		// Unresolvable, not free: the caller decides what to show.
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}
