package http

import (
	"github.com/gin-gonic/gin"

	"shareit/pkg/response"
)

// Create godoc
// @Summary     Book an item
// @Description The new booking waits for the owner's approval.
// @Tags        Bookings
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Caller ID"
// @Param       body             body   createReq true "Booking data"
// @Success     200 {object} response.Resp{data=bookingResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /bookings [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingResp(b))
}

// Update godoc
// @Summary     Approve or reject a booking
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int  true "Caller ID"
// @Param       id               path   int  true "Booking ID"
// @Param       approved         query  bool true "Decision"
// @Success     200 {object} response.Resp{data=bookingResp}
// @Failure     400 {object} response.Resp "Bad Request - already approved"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /bookings/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingResp(b))
}

// Detail godoc
// @Summary     Get a booking
// @Description Visible to the booker and to the owner of the item.
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Caller ID"
// @Param       id               path   int true "Booking ID"
// @Success     200 {object} response.Resp{data=bookingResp}
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /bookings/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingResp(b))
}

// ListByBooker godoc
// @Summary     List the caller's bookings
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int    true  "Caller ID"
// @Param       state            query  string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED"
// @Param       from             query  int    false "First element (default: 0)"
// @Param       size             query  int    false "Page size (default: 10)"
// @Success     200 {object} response.Resp{data=[]bookingResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Unknown state"
// @Router      /bookings [GET]
func (h *handler) ListByBooker(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListByBooker(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ListByBooker: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// ListByOwner godoc
// @Summary     List bookings of the caller's items
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int    true  "Caller ID"
// @Param       state            query  string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED"
// @Param       from             query  int    false "First element (default: 0)"
// @Param       size             query  int    false "Page size (default: 10)"
// @Success     200 {object} response.Resp{data=[]bookingResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Unknown state"
// @Router      /bookings/owner [GET]
func (h *handler) ListByOwner(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListByOwner(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ListByOwner: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}
