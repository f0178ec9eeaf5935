package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/judoclub/clubsite/internal/handler/http/dto"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
)

type StatsHandler struct {
	statsUsecase usecasecontract.IStatsUseCase
	logger       usecasecontract.IAppLogger
}

func NewStatsHandler(statsUsecase usecasecontract.IStatsUseCase, logger usecasecontract.IAppLogger) *StatsHandler {
	return &StatsHandler{statsUsecase: statsUsecase, logger: logger}
}

// GetDashboardStats handles GET /admin/stats
func (h *StatsHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.statsUsecase.GetDashboardStats(c.Request.Context(), caller(c))
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, stats)
}

// Health is the liveness check.
func Health(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, dto.HealthResponse{Status: "ok"})
}
