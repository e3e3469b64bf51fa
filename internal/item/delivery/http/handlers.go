package http

import (
	"github.com/gin-gonic/gin"

	"shareit/pkg/response"
)

// Create godoc
// @Summary     List a new item
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Caller ID"
// @Param       body             body   createReq true "Item data"
// @Success     200 {object} response.Resp{data=itemResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found - owner or request"
// @Router      /items [POST]
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

	it, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(it))
}

// Update godoc
// @Summary     Update an item
// @Description Partial update, owner only.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Caller ID"
// @Param       id               path   int       true "Item ID"
// @Param       body             body   updateReq true "Fields to update"
// @Success     200 {object} response.Resp{data=itemResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items/{id} [PATCH]
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

	it, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(it))
}

// Delete godoc
// @Summary     Delete an item
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Caller ID"
// @Param       id               path   int true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - item has bookings or comments"
// @Router      /items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
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

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Detail godoc
// @Summary     Get an item
// @Description Comments are always included; last and next bookings only for the owner.
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Caller ID"
// @Param       id               path   int true "Item ID"
// @Success     200 {object} response.Resp{data=itemViewResp}
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items/{id} [GET]
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

	response.OK(c, newItemViewResp(view))
}

// ListByOwner godoc
// @Summary     List the caller's items
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int true  "Caller ID"
// @Param       from             query  int false "First element (default: 0)"
// @Param       size             query  int false "Page size (default: 10)"
// @Success     200 {object} response.Resp{data=[]itemViewResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /items [GET]
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

// Search godoc
// @Summary     Search available items
// @Description Case-insensitive match on name or description. Blank text finds nothing.
// @Tags        Items
// @Produce     json
// @Param       text query string false "Search text"
// @Param       from query int    false "First element (default: 0)"
// @Param       size query int    false "Page size (default: 10)"
// @Success     200 {object} response.Resp{data=[]itemResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /items/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSearchResp(output))
}

// CreateComment godoc
// @Summary     Comment on an item
// @Description Only users whose booking of the item has ended may comment.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int        true "Caller ID"
// @Param       id               path   int        true "Item ID"
// @Param       body             body   commentReq true "Comment"
// @Success     200 {object} response.Resp{data=commentResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items/{id}/comment [POST]
func (h *handler) CreateComment(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	req, err := h.processCommentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	comment, err := h.uc.CreateComment(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateComment: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCommentResp(comment))
}
