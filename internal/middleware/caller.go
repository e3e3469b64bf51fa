package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/model"
	pkgErrors "shareit/pkg/errors"
	"shareit/pkg/response"
)

// HeaderSharerUserID carries the id of the calling user.
const HeaderSharerUserID = "X-Sharer-User-Id"

const scopeKey = "shareit.scope"

// Caller resolves the calling user from the X-Sharer-User-Id header.
// Requests without a positive integer id are rejected with 400.
func (m Middleware) Caller() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderSharerUserID)
		if raw == "" {
			response.Error(c, pkgErrors.NewValidationError("header "+HeaderSharerUserID+" is required"))
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.Error(c, pkgErrors.NewValidationError("header "+HeaderSharerUserID+" must be a positive integer"))
			return
		}

		c.Set(scopeKey, model.Scope{UserID: id})
		c.Next()
	}
}

// GetScope returns the caller resolved by Caller. ok is false on routes
// that do not run it.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, exists := c.Get(scopeKey)
	if !exists {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
