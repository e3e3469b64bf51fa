package http

import (
	"github.com/gin-gonic/gin"

	"shareit/pkg/response"
)

// Create godoc
// @Summary     Ask for an item
// @Tags        Requests
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Caller ID"
// @Param       body             body   createReq true "Request"
// @Success     200 {object} response.Resp{data=requestResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /requests [POST]
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

	view, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRequestResp(view))
}

// ListOwn godoc
// @Summary     List the caller's requests
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Caller ID"
// @Success     200 {object} response.Resp{data=[]requestResp}
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /requests [GET]
func (h *handler) ListOwn(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListOwn(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "uc.ListOwn: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// ListOthers godoc
// @Summary     List other users' requests
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true  "Caller ID"
// @Param       from             query  int false "First element (default: 0)"
// @Param       size             query  int false "Page size (default: 10)"
// @Success     200 {object} response.Resp{data=[]requestResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /requests/all [GET]
func (h *handler) ListOthers(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	req, err := h.processListOthersReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListOthers(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ListOthers: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a request
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Caller ID"
// @Param       id               path   int true "Request ID"
// @Success     200 {object} response.Resp{data=requestResp}
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /requests/{id} [GET]
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

	view, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRequestResp(view))
}
