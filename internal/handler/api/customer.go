package api

import (
	"net/http"

	reqdto "lunchly/internal/handler/dto/request"
	resdto "lunchly/internal/handler/dto/response"
	"lunchly/internal/handler/httperr"
	"lunchly/internal/usecase/commands"
	"lunchly/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	cmds         commands.CustomerCommands
	reservations commands.ReservationCommands
	q            queries.CustomerQueries
}

func NewCustomerHandler(cmds commands.CustomerCommands, reservations commands.ReservationCommands, q queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{cmds: cmds, reservations: reservations, q: q}
}

// @Summary List customers
// @Description List all customers ordered by last name, each with its most recent reservation
// @Tags customers
// @Produce json
// @Success 200 {object} resdto.CustomerListResponse
// @Failure 500 {object} httperr.Response
// @Router /api/customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	list, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerList(list))
}

// @Summary Search customers
// @Description Case-insensitive substring search over first, middle and last name
// @Tags customers
// @Produce json
// @Param term query string false "Search term"
// @Success 200 {object} resdto.CustomerListResponse
// @Failure 500 {object} httperr.Response
// @Router /api/customers/search [get]
func (h *CustomerHandler) Search(c *gin.Context) {
	list, err := h.q.Search(c.Request.Context(), c.Query("term"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerList(list))
}

// @Summary Best customers
// @Description Top ten customers by number of reservations
// @Tags customers
// @Produce json
// @Success 200 {object} resdto.CustomerListResponse
// @Failure 500 {object} httperr.Response
// @Router /api/customers/best [get]
func (h *CustomerHandler) Best(c *gin.Context) {
	list, err := h.q.Best(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerList(list))
}

// @Summary New customer form
// @Tags customers
// @Produce json
// @Success 200 {object} resdto.CustomerFormResponse
// @Router /api/customers/new [get]
func (h *CustomerHandler) NewForm(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.CustomerFormResponse{Action: customersPath})
}

// @Summary Create customer
// @Description Create a customer and redirect to its detail page
// @Tags customers
// @Accept json,x-www-form-urlencoded
// @Param request body reqdto.CreateCustomerRequest true "Customer"
// @Success 303
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req reqdto.CreateCustomerRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), in)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, CustomerPath(id))
}

// @Summary Get customer
// @Description Customer detail with all reservations
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} resdto.CustomerDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "customer")
	if !ok {
		return
	}
	detail, err := h.q.GetDetail(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerDetail(detail))
}

// @Summary Edit customer form
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} resdto.CustomerFormResponse
// @Failure 404 {object} httperr.Response
// @Router /api/customers/{id}/edit [get]
func (h *CustomerHandler) EditForm(c *gin.Context) {
	id, ok := parseIDParam(c, "customer")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CustomerFormResponse{
		Action:   CustomerPath(id) + "/edit",
		Customer: resdto.FromCustomerView(*view),
	})
}

// @Summary Update customer
// @Tags customers
// @Accept json,x-www-form-urlencoded
// @Param id path int true "Customer ID"
// @Param request body reqdto.UpdateCustomerRequest true "Fields to change"
// @Success 303
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/customers/{id}/edit [post]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "customer")
	if !ok {
		return
	}
	var req reqdto.UpdateCustomerRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	p, err := req.ToPatch()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, p); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, CustomerPath(id))
}

// @Summary Add reservation
// @Description Create a reservation for the customer and redirect to the customer's detail page
// @Tags reservations
// @Accept json,x-www-form-urlencoded
// @Param id path int true "Customer ID"
// @Param request body reqdto.CreateReservationRequest true "Reservation"
// @Success 303
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/customers/{id}/reservations [post]
func (h *CustomerHandler) AddReservation(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customer")
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start time", nil)
		return
	}
	if _, err := h.reservations.Create(c.Request.Context(), customerID, in); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, CustomerPath(customerID))
}
