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

type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *zap.Logger
	now              func() time.Time
}

func NewDashboardHandler(dashboardService service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, logger: orNop(logger), now: time.Now}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/api/dashboard")
	{
		dashboard.GET("/summary", h.GetSummary)
	}
}

// GetSummary returns year to date totals and the latest calculations
// @Summary      Dashboard summary
// @Description  Year to date revenue and expenses, the latest tax liability and the five most recent calculations
// @Tags         dashboard
// @Produce      json
// @Param        business_id  query     string  true   "Business ID"
// @Param        year         query     int     false  "Calendar year (default current year)"
// @Success      200          {object}  response.Response{data=service.DashboardSummaryResponse}
// @Failure      400          {object}  response.Response
// @Failure      500          {object}  response.Response
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	year := h.now().UTC().Year()
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y <= 0 {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid year"))
			return
		}
		year = y
	}

	summary, err := h.dashboardService.Summary(c.Request.Context(), c.Query("business_id"), year)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}
