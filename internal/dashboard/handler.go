package dashboard

import (
	"net/http"

	"gymcore/internal/api"
	"gymcore/internal/tenant"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// GetStats godoc
// @Summary      Dashboard counters
// @Description  Member totals, new members and revenue for the current month, distribution by plan.
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Stats
// @Failure      500  {object}  api.ErrorResponse
// @Router       /dashboard/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), gymID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetRecentActivity godoc
// @Summary      Newest members
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   member.Member
// @Router       /dashboard/recent-activity [get]
func (h *Handler) GetRecentActivity(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}

	members, err := h.service.RecentActivity(c.Request.Context(), gymID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// GetRevenueChart godoc
// @Summary      Revenue of the last six months
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   RevenuePoint
// @Router       /dashboard/revenue-chart [get]
func (h *Handler) GetRevenueChart(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}

	points, err := h.service.RevenueChart(c.Request.Context(), gymID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, points)
}
