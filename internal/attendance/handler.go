package attendance

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

// CheckIn godoc
// @Summary      Check a member in
// @Description  Records one attendance for the member with the given DNI. Repeated scans are all counted.
// @Tags         attendance
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CheckInRequest  true  "Member DNI"
// @Success      200  {object}  Record
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /attendance/check-in [post]
func (h *Handler) CheckIn(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}

	var req CheckInRequest
	if !api.BindJSON(c, &req) {
		return
	}

	record, err := h.service.CheckIn(c.Request.Context(), gymID, req.DNI)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Today godoc
// @Summary      Today's check-ins
// @Tags         attendance
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  Record
// @Router       /attendance/today [get]
func (h *Handler) Today(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}

	records, err := h.service.Today(c.Request.Context(), gymID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// Range godoc
// @Summary      Check-ins of the last N days
// @Tags         attendance
// @Security     BearerAuth
// @Produce      json
// @Param        days  query     int  false  "Window in days" default(7)
// @Success      200  {array}  Record
// @Router       /attendance/range [get]
func (h *Handler) Range(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}

	days := api.QueryInt(c, "days", defaultRangeDays, 1, 365)
	records, err := h.service.Range(c.Request.Context(), gymID, days)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// MemberHistory godoc
// @Summary      Check-in history of a member
// @Tags         attendance
// @Security     BearerAuth
// @Produce      json
// @Param        id     path      int  true   "Member ID"
// @Param        limit  query     int  false  "Max rows" default(10)
// @Success      200  {array}   Record
// @Failure      404  {object}  api.ErrorResponse
// @Router       /attendance/member/{id} [get]
func (h *Handler) MemberHistory(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}
	memberID, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	limit := api.QueryInt(c, "limit", defaultHistoryLimit, 1, 100)
	records, err := h.service.MemberHistory(c.Request.Context(), gymID, memberID, limit)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// Stats godoc
// @Summary      Attendance counters
// @Description  Check-ins since midnight, in the last 7 days and in the last 30 days.
// @Tags         attendance
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Stats
// @Router       /attendance/stats [get]
func (h *Handler) Stats(c *gin.Context) {
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
