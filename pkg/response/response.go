package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"victoriaos-connector/pkg/victoriaos"
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

// Error sends a 400 with the error message.
func Error(c *gin.Context, err error, data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: 1,
		Message:   err.Error(),
		Data:      data,
	})
}

// Upstream reports a failed VictoriaOS call. Structured API errors keep
// their code in Errors; everything else is a 502.
func Upstream(c *gin.Context, err error) {
	normalized := victoriaos.Normalize(err)

	var apiErr *victoriaos.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status < 400 {
			status = http.StatusBadGateway
		}
		c.JSON(status, Resp{
			ErrorCode: status,
			Message:   normalized.Error(),
			Errors:    gin.H{"code": apiErr.Code, "details": apiErr.Details},
		})
		return
	}

	c.JSON(http.StatusBadGateway, Resp{
		ErrorCode: BadGatewayErrorCode,
		Message:   normalized.Error(),
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// PayloadTooLarge sends 413 response.
func PayloadTooLarge(c *gin.Context) {
	c.JSON(http.StatusRequestEntityTooLarge, Resp{
		ErrorCode: 413,
		Message:   "Request body too large",
	})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Resp{
		ErrorCode: 403,
		Message:   "Forbidden",
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{
		ErrorCode: 429,
		Message:   "Too Many Requests",
	})
}
