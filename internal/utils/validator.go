package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindAndValidate binds the request body to the given object and validates it.
// If validation fails, it sends a 400 with a short message and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, NewMessageResponse(validationMessage(err)))
		return false
	}
	return true
}

func validationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "Malformed JSON or invalid request body"
	}

	e := errs[0]
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' is required", e.Field())
	case "email":
		return fmt.Sprintf("Field '%s' must be a valid email address", e.Field())
	case "min":
		return fmt.Sprintf("Field '%s' must be at least %s characters long", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("Field '%s' must be at most %s characters long", e.Field(), e.Param())
	default:
		return fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
}
