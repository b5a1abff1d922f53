package plan

import (
	"net/http"
	"strconv"

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

// ListPlans godoc
// @Summary      List membership plans
// @Tags         membership-plans
// @Security     BearerAuth
// @Produce      json
// @Param        include_inactive  query     bool  false  "Include disabled plans"
// @Success      200  {array}   Plan
// @Failure      403  {object}  api.ErrorResponse
// @Router       /membership-plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}
	includeInactive, _ := strconv.ParseBool(c.Query("include_inactive"))

	plans, err := h.service.List(c.Request.Context(), gymID, includeInactive)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

// GetPlan godoc
// @Summary      Get a membership plan
// @Tags         membership-plans
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Plan ID"
// @Success      200  {object}  Plan
// @Failure      404  {object}  api.ErrorResponse
// @Router       /membership-plans/{id} [get]
func (h *Handler) GetPlan(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), gymID, id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// CreatePlan godoc
// @Summary      Create a membership plan
// @Tags         membership-plans
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreatePlanRequest  true  "Plan"
// @Success      201  {object}  Plan
// @Failure      400  {object}  api.ValidationErrorResponse
// @Failure      403  {object}  api.ErrorResponse
// @Router       /membership-plans [post]
func (h *Handler) CreatePlan(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}

	var req CreatePlanRequest
	if !api.BindJSON(c, &req) {
		return
	}

	p, err := h.service.Create(c.Request.Context(), gymID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// UpdatePlan godoc
// @Summary      Update a membership plan
// @Tags         membership-plans
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                true  "Plan ID"
// @Param        request  body      UpdatePlanRequest  true  "Fields to change"
// @Success      200  {object}  Plan
// @Failure      404  {object}  api.ErrorResponse
// @Router       /membership-plans/{id} [put]
func (h *Handler) UpdatePlan(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	var req UpdatePlanRequest
	if !api.BindJSON(c, &req) {
		return
	}

	p, err := h.service.Update(c.Request.Context(), gymID, id, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// DeletePlan godoc
// @Summary      Delete a membership plan
// @Tags         membership-plans
// @Security     BearerAuth
// @Param        id   path  int  true  "Plan ID"
// @Success      204
// @Failure      404  {object}  api.ErrorResponse
// @Router       /membership-plans/{id} [delete]
func (h *Handler) DeletePlan(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), gymID, id); err != nil {
		api.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleStatus godoc
// @Summary      Enable or disable a membership plan
// @Tags         membership-plans
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Plan ID"
// @Success      200  {object}  Plan
// @Failure      404  {object}  api.ErrorResponse
// @Router       /membership-plans/{id}/toggle-status [patch]
func (h *Handler) ToggleStatus(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	p, err := h.service.ToggleStatus(c.Request.Context(), gymID, id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}
