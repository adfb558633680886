package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func errorResponse(c *gin.Context, code ErrorCode) {
	c.AbortWithStatusJSON(http.StatusBadRequest, getErrorStruct(code))
}

func notFoundResponse(c *gin.Context, code ErrorCode) {
	c.AbortWithStatusJSON(http.StatusNotFound, getErrorStruct(code))
}

func internalErrorResponse(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, getErrorStruct(UnknownErrorCode))
}

func badGatewayResponse(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadGateway, getErrorStruct(UnknownErrorCode))
}

func validationErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		out := make([]ValidationError, len(verr))
		for i, ferr := range verr {
			out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
		}
		response := ValidationErrorStruct{
			ErrorCode:    6000,
			ErrorMessage: "Validation error",
		}
		response.Errors = out
		c.AbortWithStatusJSON(http.StatusBadRequest, response)
		return
	}

	errorResponse(c, UnknownErrorCode)
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "email":
		return "invalid email format"
	case "dni":
		return "invalid DNI, expected 8 digits and a letter"
	case "uuid":
		return "invalid identifier format"
	case "oneof":
		return fmt.Sprintf("value must be one of: %v", value)
	case "min":
		return fmt.Sprintf("minimum length is %v", value)
	case "max":
		return fmt.Sprintf("maximum length is %v", value)
	case "datetime":
		return "invalid date format"
	}
	return tag
}
