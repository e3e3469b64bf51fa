package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "shareit/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error renders err. HTTPErrors keep their status, kind and message; anything
// else becomes an opaque 500.
func Error(c *gin.Context, err error) {
	httpErr, ok := pkgErrors.AsHTTPError(err)
	if !ok {
		InternalError(c, err)
		return
	}

	c.AbortWithStatusJSON(httpErr.Code, Resp{
		ErrorCode: httpErr.Code,
		Kind:      string(httpErr.Kind),
		Message:   httpErr.Message,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Kind:      string(pkgErrors.KindInternal),
		Message:   DefaultErrorMessage,
	})
}
