package admin

import (
	"net/http"

	"gymcore/internal/api"
	"gymcore/internal/apperr"
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
// @Summary      Platform counters
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  PlatformStats
// @Failure      403  {object}  api.ErrorResponse
// @Router       /admin/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ListGyms godoc
// @Summary      List all gyms
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        skip           query     int     false  "Offset"     default(0)
// @Param        limit          query     int     false  "Page size"  default(50)
// @Param        status_filter  query     string  false  "active or inactive"
// @Param        search         query     string  false  "Name or email fragment"
// @Success      200  {array}   GymSummary
// @Failure      403  {object}  api.ErrorResponse
// @Router       /admin/gyms [get]
func (h *Handler) ListGyms(c *gin.Context) {
	gyms, err := h.service.ListGyms(c.Request.Context(), GymFilter{
		Skip:   api.QueryInt(c, "skip", 0, 0, 0),
		Limit:  api.QueryInt(c, "limit", 50, 1, 100),
		Status: c.Query("status_filter"),
		Search: c.Query("search"),
	})
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gyms)
}

// GetGym godoc
// @Summary      Gym detail
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Gym ID"
// @Success      200  {object}  GymDetail
// @Failure      404  {object}  api.ErrorResponse
// @Router       /admin/gyms/{id} [get]
func (h *Handler) GetGym(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	detail, err := h.service.GetGym(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// ToggleGym godoc
// @Summary      Activate or deactivate a gym
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Gym ID"
// @Success      200  {object}  ToggleResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /admin/gyms/{id}/toggle-status [patch]
func (h *Handler) ToggleGym(c *gin.Context) {
	p, ok := tenant.GetPrincipal(c)
	if !ok {
		api.RespondError(c, apperr.ErrUnauthenticated)
		return
	}
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.ToggleGym(c.Request.Context(), p.UserID, id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
