package notification

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

// List godoc
// @Summary      Notifications
// @Description  Up to 10 unread notifications followed by up to 5 read ones, newest first.
// @Tags         notifications
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Notification
// @Failure      403  {object}  api.ErrorResponse
// @Router       /notifications [get]
func (h *Handler) List(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}

	list, err := h.service.List(c.Request.Context(), gymID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// MarkRead godoc
// @Summary      Mark a notification as read
// @Tags         notifications
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Notification ID"
// @Success      200  {object}  api.MessageResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /notifications/{id}/mark-read [post]
func (h *Handler) MarkRead(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), gymID, id); err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Notification marked as read"})
}
