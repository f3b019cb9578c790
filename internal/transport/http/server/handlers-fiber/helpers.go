package handlers_fiber

import (
	"errors"
	"net/http"

	"contact-directory/internal/entities"
	api "contact-directory/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidPhone):
		status = http.StatusBadRequest
		code = api.VALIDATIONERROR
		msg = "Invalid phone format"
	case errors.Is(err, entities.ErrValidation):
		status = http.StatusBadRequest
		code = api.VALIDATIONERROR
		msg = err.Error()
	case errors.Is(err, entities.ErrInvalidID):
		status = http.StatusBadRequest
		code = api.INVALIDID
		msg = err.Error()
	case errors.Is(err, entities.ErrNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = err.Error()
	case errors.Is(err, entities.ErrContactExists):
		status = http.StatusConflict
		code = api.CONTACTEXISTS
		msg = "Contact Exists"
	case errors.Is(err, entities.ErrUpstream):
		status = http.StatusBadGateway
		code = api.UPSTREAMERROR
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: struct {
		Code    api.ErrorResponseErrorCode `json:"code"`
		Message string                     `json:"message"`
	}{Code: code, Message: msg}}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATIONERROR, "invalid body"))
}
