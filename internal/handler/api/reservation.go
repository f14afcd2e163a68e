package api

import (
	"fmt"
	"net/http"

	reqdto "lunchly/internal/handler/dto/request"
	resdto "lunchly/internal/handler/dto/response"
	"lunchly/internal/handler/httperr"
	"lunchly/internal/usecase/commands"
	"lunchly/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Edit reservation form
// @Description Reservation together with the customer it belongs to
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationFormResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id}/edit [get]
func (h *ReservationHandler) EditForm(c *gin.Context) {
	id, ok := parseIDParam(c, "reservation")
	if !ok {
		return
	}
	edit, err := h.q.GetForEdit(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationEdit(fmt.Sprintf("/api/reservations/%d/edit", id), edit))
}

// @Summary Update reservation
// @Description Change guests, start time or notes, then redirect to the owning customer
// @Tags reservations
// @Accept json,x-www-form-urlencoded
// @Param id path int true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Fields to change"
// @Success 303
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations/{id}/edit [post]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "reservation")
	if !ok {
		return
	}
	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	p, err := req.ToPatch()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start time", nil)
		return
	}
	customerID, err := h.cmds.Update(c.Request.Context(), id, p)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, CustomerPath(customerID))
}
