package gym

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

// @Summary      Get current gym
// @Tags         gyms
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} gym.Gym
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /gyms/me [get]
func (h *Handler) GetMyGym(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}

	gym, err := h.service.Get(c.Request.Context(), gymID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gym)
}

// @Summary      Update current gym
// @Description  Admin-only: partial update of the gym profile
// @Tags         gyms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body gym.UpdateGymRequest true "Fields to change"
// @Success      200 {object} gym.Gym
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Router       /gyms/me [put]
func (h *Handler) UpdateMyGym(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}

	var req UpdateGymRequest
	if !api.BindJSON(c, &req) {
		return
	}

	gym, err := h.service.Update(c.Request.Context(), gymID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gym)
}
