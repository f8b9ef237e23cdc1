package handler

import (
	"net/http"

	"taxledger/internal/service"
	"taxledger/pkg/pagination"
	"taxledger/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaxCalculationHandler struct {
	calcService service.TaxCalculationService
	logger      *zap.Logger
}

func NewTaxCalculationHandler(calcService service.TaxCalculationService, logger *zap.Logger) *TaxCalculationHandler {
	return &TaxCalculationHandler{calcService: calcService, logger: orNop(logger)}
}

func (h *TaxCalculationHandler) RegisterRoutes(router *gin.RouterGroup) {
	calcs := router.Group("/api/tax-calculations")
	{
		calcs.POST("/preview", h.Preview)
		calcs.POST("", h.Calculate)
		calcs.GET("", h.List)
		calcs.GET("/:id", h.Get)
		calcs.PUT("/:id/finalize", h.Finalize)
	}
}

// Preview computes a liability without saving it
// @Summary      Preview tax calculation
// @Description  Computes income tax, VAT and social contributions for a business and period without saving
// @Tags         tax-calculations
// @Accept       json
// @Produce      json
// @Param        request  body      service.CalculationRequest  true  "Business and period"
// @Success      200      {object}  response.Response{data=service.CalculationPreviewResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /api/tax-calculations/preview [post]
func (h *TaxCalculationHandler) Preview(c *gin.Context) {
	var req service.CalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	res, err := h.calcService.Preview(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// Calculate computes and stores a draft calculation
// @Summary      Create tax calculation
// @Description  Computes the liability and stores it as a draft
// @Tags         tax-calculations
// @Accept       json
// @Produce      json
// @Param        request  body      service.CalculationRequest  true  "Business and period"
// @Success      201      {object}  response.Response{data=service.CalculateResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/tax-calculations [post]
func (h *TaxCalculationHandler) Calculate(c *gin.Context) {
	var req service.CalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	res, err := h.calcService.Calculate(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, res))
}

// List returns stored calculations, newest first
// @Summary      List tax calculations
// @Tags         tax-calculations
// @Produce      json
// @Param        business_id  query     string  false  "Filter by business"
// @Param        page         query     int     false  "Page number (default 1)"
// @Param        limit        query     int     false  "Number of items per page (default 20)"
// @Success      200          {object}  response.Response{data=response.Page}
// @Failure      400          {object}  response.Response
// @Router       /api/tax-calculations [get]
func (h *TaxCalculationHandler) List(c *gin.Context) {
	p := pagination.Parse(c)

	calcs, total, err := h.calcService.List(c.Request.Context(), c.Query("business_id"), p)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, calcs, total, p.Page, p.Limit))
}

// Get returns one stored calculation
// @Summary      Get tax calculation
// @Tags         tax-calculations
// @Produce      json
// @Param        id   path      string  true  "Calculation ID"
// @Success      200  {object}  response.Response{data=service.TaxCalculationResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/tax-calculations/{id} [get]
func (h *TaxCalculationHandler) Get(c *gin.Context) {
	calc, err := h.calcService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, calc))
}

// Finalize locks a draft calculation
// @Summary      Finalize tax calculation
// @Tags         tax-calculations
// @Produce      json
// @Param        id   path      string  true  "Calculation ID"
// @Success      200  {object}  response.Response{data=service.TaxCalculationResponse}
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /api/tax-calculations/{id}/finalize [put]
func (h *TaxCalculationHandler) Finalize(c *gin.Context) {
	calc, err := h.calcService.Finalize(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, calc))
}
