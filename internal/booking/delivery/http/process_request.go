package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
	"shareit/internal/model"
	pkgErrors "shareit/pkg/errors"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, pkgErrors.NewValidationError("header " + middleware.HeaderSharerUserID + " is required")
	}
	return sc, nil
}

func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgErrors.NewValidationError("id must be a positive integer")
	}
	return id, nil
}

// processCreateReq binds the booking request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError(err.Error())
	}
	return req, nil
}

// processUpdateReq binds the booking id and the approved flag.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := h.processIDParam(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewValidationError(`query parameter "approved" must be true or false`)
	}
	req.ID = id
	return req, nil
}

// processListReq binds state and from/size query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewValidationError(err.Error())
	}
	return req, nil
}
