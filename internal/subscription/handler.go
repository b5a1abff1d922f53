package subscription

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

// ListPlans godoc
// @Summary      Subscription catalog
// @Tags         billing
// @Produce      json
// @Success      200  {array}  Plan
// @Router       /billing/plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, Plans())
}

// MockPayment godoc
// @Summary      Pay for a subscription (simulated)
// @Description  Activates the gym and creates a 30 day subscription. Paying again while active is a no-op success.
// @Tags         billing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      PaymentRequest  true  "Plan and mock payment method"
// @Success      200      {object}  PaymentResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Router       /billing/mock-payment [post]
func (h *Handler) MockPayment(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}

	var req PaymentRequest
	if !api.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.Pay(c.Request.Context(), gymID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSubscription godoc
// @Summary      Current subscription
// @Tags         billing
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  SubscriptionResponse
// @Failure      403  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /billing/subscription [get]
func (h *Handler) GetSubscription(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), gymID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ChangePlan godoc
// @Summary      Change subscription plan
// @Description  The billing period and amount paid are kept.
// @Tags         billing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      ChangePlanRequest  true  "Target plan"
// @Success      200      {object}  Subscription
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /billing/change-plan [post]
func (h *Handler) ChangePlan(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}

	var req ChangePlanRequest
	if !api.BindJSON(c, &req) {
		return
	}

	sub, err := h.service.ChangePlan(c.Request.Context(), gymID, req.NewPlanType)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// CancelSubscription godoc
// @Summary      Cancel subscription
// @Description  The gym keeps access until the end of the paid period.
// @Tags         billing
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Subscription
// @Failure      404  {object}  api.ErrorResponse
// @Router       /billing/cancel-subscription [post]
func (h *Handler) CancelSubscription(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}

	sub, err := h.service.Cancel(c.Request.Context(), gymID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// ListInvoices godoc
// @Summary      Invoices
// @Tags         billing
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  Invoice
// @Router       /billing/invoices [get]
func (h *Handler) ListInvoices(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}

	invoices, err := h.service.Invoices(c.Request.Context(), gymID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// GetPaymentMethod godoc
// @Summary      Card on file
// @Tags         billing
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  PaymentMethod
// @Failure      404  {object}  api.ErrorResponse
// @Router       /billing/payment-method [get]
func (h *Handler) GetPaymentMethod(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}

	pm, err := h.service.GetPaymentMethod(c.Request.Context(), gymID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pm)
}

// UpdatePaymentMethod godoc
// @Summary      Replace card on file
// @Description  Only the last four digits are stored.
// @Tags         billing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      PaymentMethodRequest  true  "Card"
// @Success      200      {object}  PaymentMethod
// @Failure      400      {object}  api.ErrorResponse
// @Router       /billing/payment-method [put]
func (h *Handler) UpdatePaymentMethod(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}

	var req PaymentMethodRequest
	if !api.BindJSON(c, &req) {
		return
	}

	pm, err := h.service.UpdatePaymentMethod(c.Request.Context(), gymID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pm)
}
