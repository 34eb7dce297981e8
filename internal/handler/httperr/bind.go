package httperr

import (
	"encoding/json"
	"fmt"
	"net/http"

	"property-rental/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AbortWithBindError reports a failed ShouldBind* call. Validation failures
// become a field map; anything else is a malformed body.
func AbortWithBindError(c *gin.Context, err error) {
	abort(c, err, FromBindError(err))
}

func FromBindError(err error) Response {
	resp := Response{Status: http.StatusBadRequest}
	resp.Error.Message = "Validation failed"

	var verrs validator.ValidationErrors
	if errs.As(err, &verrs) {
		resp.Fields = make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			resp.Fields[fe.Field()] = append(resp.Fields[fe.Field()], validationMessage(fe))
		}
		return resp
	}

	var typeErr *json.UnmarshalTypeError
	if errs.As(err, &typeErr) && typeErr.Field != "" {
		resp.Fields = map[string][]string{typeErr.Field: {"Invalid value."}}
		return resp
	}

	resp.Error.Message = "Invalid request format"
	resp.Errors = []string{err.Error()}
	return resp
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "gt":
		return fmt.Sprintf("Ensure this value is greater than %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "lte":
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "datetime":
		return "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	case "uuid":
		return "Must be a valid UUID."
	default:
		return "Invalid value."
	}
}
