package member

import (
	"context"
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

// ListMembers godoc
// @Summary      List members
// @Description  Paginated members of the caller's gym, optionally filtered by status and name.
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        skip    query     int     false  "Offset"            default(0)
// @Param        limit   query     int     false  "Page size (max 100)" default(10)
// @Param        status  query     string  false  "active, inactive, suspended or all"
// @Param        search  query     string  false  "Case-insensitive name fragment"
// @Success      200  {array}   Member
// @Failure      403  {object}  api.ErrorResponse
// @Router       /members [get]
func (h *Handler) ListMembers(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}

	members, err := h.service.List(c.Request.Context(), gymID, ListFilter{
		Skip:   api.QueryInt(c, "skip", 0, 0, 0),
		Limit:  api.QueryInt(c, "limit", 10, 1, 100),
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// CreateMember godoc
// @Summary      Create a member
// @Tags         members
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateMemberRequest  true  "Member"
// @Success      201  {object}  Member
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /members [post]
func (h *Handler) CreateMember(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}

	var req CreateMemberRequest
	if !api.BindJSON(c, &req) {
		return
	}

	m, err := h.service.Create(c.Request.Context(), gymID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

// GetMember godoc
// @Summary      Get a member
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Member ID"
// @Success      200  {object}  Member
// @Failure      404  {object}  api.ErrorResponse
// @Router       /members/{id} [get]
func (h *Handler) GetMember(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	m, err := h.service.Get(c.Request.Context(), gymID, id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// UpdateMember godoc
// @Summary      Update a member
// @Tags         members
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Member ID"
// @Param        request  body      UpdateMemberRequest  true  "Fields to change"
// @Success      200  {object}  Member
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /members/{id} [put]
func (h *Handler) UpdateMember(c *gin.Context) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	var req UpdateMemberRequest
	if !api.BindJSON(c, &req) {
		return
	}

	m, err := h.service.Update(c.Request.Context(), gymID, id, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// DeleteMember godoc
// @Summary      Delete a member
// @Description  Also removes the member's attendance history.
// @Tags         members
// @Security     BearerAuth
// @Param        id   path  int  true  "Member ID"
// @Success      204
// @Failure      404  {object}  api.ErrorResponse
// @Router       /members/{id} [delete]
func (h *Handler) DeleteMember(c *gin.Context) {
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

// SuspendMember godoc
// @Summary      Suspend a member
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Member ID"
// @Success      200  {object}  Member
// @Failure      404  {object}  api.ErrorResponse
// @Router       /members/{id}/suspend [patch]
func (h *Handler) SuspendMember(c *gin.Context) {
	h.setStatus(c, h.service.Suspend)
}

// ActivateMember godoc
// @Summary      Reactivate a member
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Member ID"
// @Success      200  {object}  Member
// @Failure      404  {object}  api.ErrorResponse
// @Router       /members/{id}/activate [patch]
func (h *Handler) ActivateMember(c *gin.Context) {
	h.setStatus(c, h.service.Activate)
}

func (h *Handler) setStatus(c *gin.Context, apply func(ctx context.Context, gymID, id int) (*Member, error)) {
	gymID, ok := tenant.GymID(c)
	if !ok {
		return
	}
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	m, err := apply(c.Request.Context(), gymID, id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}
