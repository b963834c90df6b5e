package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "streaming-service.backend/internal/domain/errors"
	"streaming-service.backend/internal/interfaces/http/response"
	"streaming-service.backend/internal/usecases"
	"streaming-service.backend/pkg/utils"
)

// ReportHandler serves the read-only analytics reports
type ReportHandler struct {
	analyticsUsecase *usecases.AnalyticsUsecase
}

// NewReportHandler creates a new report handler
func NewReportHandler(analyticsUsecase *usecases.AnalyticsUsecase) *ReportHandler {
	return &ReportHandler{analyticsUsecase: analyticsUsecase}
}

// Report serves one parameterless report
// GET /api/v1/reports/{name}
func (h *ReportHandler) Report(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := h.analyticsUsecase.Report(c.Request.Context(), name)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, http.StatusOK, result)
	}
}

// UsersBySubscription lists users on one subscription tier
// GET /api/v1/reports/users-by-subscription/:type?page=&limit=
func (h *ReportHandler) UsersBySubscription(c *gin.Context) {
	var params utils.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, domainerrors.BadRequest("page and limit must be integers"))
		return
	}

	page, err := h.analyticsUsecase.UsersBySubscription(c.Request.Context(), c.Param("type"), params.Page, params.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, http.StatusOK, page.Items, page.Meta)
}
