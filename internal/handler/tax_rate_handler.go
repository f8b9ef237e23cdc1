package handler

import (
	"net/http"

	"taxledger/internal/service"
	"taxledger/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaxRateHandler struct {
	rateService service.TaxRateService
	logger      *zap.Logger
}

func NewTaxRateHandler(rateService service.TaxRateService, logger *zap.Logger) *TaxRateHandler {
	return &TaxRateHandler{rateService: rateService, logger: orNop(logger)}
}

func (h *TaxRateHandler) RegisterRoutes(router *gin.RouterGroup) {
	rates := router.Group("/api/tax-rates")
	{
		rates.GET("", h.GetTaxRates)
		rates.POST("", h.SupersedeTaxRate)
	}
}

// GetTaxRates returns all tax rates ordered by effective_from DESC
// @Summary      List tax rates
// @Tags         tax-rates
// @Produce      json
// @Param        regime  query     string  false  "simplified or general"
// @Success      200     {object}  response.Response{data=[]service.TaxRateResponse}
// @Failure      400     {object}  response.Response
// @Router       /api/tax-rates [get]
func (h *TaxRateHandler) GetTaxRates(c *gin.Context) {
	rates, err := h.rateService.List(c.Request.Context(), c.Query("regime"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rates))
}

// SupersedeTaxRate closes the active rate and opens a new one
// @Summary      Supersede tax rate
// @Description  Ends the open-ended rate of the same regime and type the day before effective_from and inserts the new rate
// @Tags         tax-rates
// @Accept       json
// @Produce      json
// @Param        request  body      service.SupersedeTaxRateRequest  true  "New rate"
// @Success      201      {object}  response.Response{data=service.TaxRateResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/tax-rates [post]
func (h *TaxRateHandler) SupersedeTaxRate(c *gin.Context) {
	var req service.SupersedeTaxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	rate, err := h.rateService.Supersede(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, rate))
}
