package httperr

import (
	"net/http"

	"property-rental/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Fields map[string][]string `json:"fields,omitempty"`
	Errors []string            `json:"errors,omitempty"`
	Detail any                 `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	abort(c, err, resp)
}

// Abort picks the status and body from the error category.
func Abort(c *gin.Context, err error) {
	if err == nil {
		panic("Abort: err cannot be nil")
	}
	abort(c, err, FromError(err))
}

func FromError(err error) Response {
	if fields, ok := errs.AsFieldErrors(err); ok {
		resp := Response{Status: http.StatusBadRequest, Fields: fields}
		resp.Error.Message = "Validation failed"
		return resp
	}

	var resp Response
	switch errs.Category(err) {
	case errs.ErrNotFound:
		resp.Status = http.StatusNotFound
		resp.Error.Message = errs.Message(err)
	case errs.ErrValidation, errs.ErrBusinessRule:
		resp.Status = http.StatusBadRequest
		resp.Error.Message = "Validation failed"
		resp.Errors = []string{errs.Message(err)}
	case errs.ErrInvalidRequest:
		resp.Status = http.StatusBadRequest
		resp.Error.Message = "Invalid request"
		resp.Errors = []string{errs.Message(err)}
	default:
		resp.Status = http.StatusInternalServerError
		resp.Error.Message = "Internal server error"
	}
	return resp
}

func abort(c *gin.Context, err error, resp Response) {
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
