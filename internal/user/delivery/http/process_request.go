package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "shareit/pkg/errors"
)

func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgErrors.NewValidationError("id must be a positive integer")
	}
	return id, nil
}

// processCreateReq binds the create user request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError(err.Error())
	}
	return req, nil
}

// processUpdateReq binds the patch body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := h.processIDParam(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError(err.Error())
	}
	req.ID = id
	return req, nil
}
