package handler

import (
	"net/http"
	"strconv"
	"time"

	"taxledger/internal/service"
	"taxledger/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaxDeadlineHandler struct {
	deadlineService service.TaxDeadlineService
	logger          *zap.Logger
	now             func() time.Time
}

func NewTaxDeadlineHandler(deadlineService service.TaxDeadlineService, logger *zap.Logger) *TaxDeadlineHandler {
	return &TaxDeadlineHandler{deadlineService: deadlineService, logger: orNop(logger), now: time.Now}
}

func (h *TaxDeadlineHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/tax-deadlines", h.GetDeadlines)
}

// GetDeadlines returns the tax calendar grouped by year
// @Summary      Tax calendar
// @Tags         tax-deadlines
// @Produce      json
// @Param        year  query     int  false  "Only this period year"
// @Success      200   {object}  response.Response{data=[]service.DeadlineYearGroup}
// @Failure      400   {object}  response.Response
// @Router       /api/tax-deadlines [get]
func (h *TaxDeadlineHandler) GetDeadlines(c *gin.Context) {
	year := 0
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y <= 0 {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid year"))
			return
		}
		year = y
	}

	groups, err := h.deadlineService.ListDeadlines(c.Request.Context(), year, h.now())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, groups))
}
