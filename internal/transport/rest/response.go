package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"storefront-be/internal/apperr"
	"storefront-be/internal/logger"
	"storefront-be/internal/user"
)

// APIResponse is the message envelope for errors and confirmations.
type APIResponse struct {
	Message string `json:"message"`
	Status  bool   `json:"status"`
}

// respondError maps a service error onto the wire. Failed logins
// deliberately come back as a 404 so the response does not reveal
// whether the username exists.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, user.ErrBadCredentials) {
		c.JSON(http.StatusNotFound, APIResponse{Message: "Bad credentials"})
		return
	}

	var nf *apperr.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, APIResponse{Message: nf.Error()})
		return
	}

	var ae *apperr.APIError
	if errors.As(err, &ae) {
		c.JSON(http.StatusBadRequest, APIResponse{Message: ae.Message})
		return
	}

	logger.FromCtx(c.Request.Context()).Error("request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, APIResponse{Message: "Internal Server Error"})
}

// respondBindError turns binding failures into a field → message map.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fieldName(fe)] = fieldMessage(fe)
		}
		c.JSON(http.StatusBadRequest, fields)
		return
	}

	c.JSON(http.StatusBadRequest, APIResponse{Message: "Invalid request body"})
}

func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	return strings.ToLower(name[:1]) + name[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldName(fe))
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must contain at least %s characters", fieldName(fe), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fieldName(fe), fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s", fieldName(fe), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fieldName(fe))
	case "gte":
		return fmt.Sprintf("%s must be %s or more", fieldName(fe), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s or less", fieldName(fe), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fieldName(fe))
	}
}
