package validation

import (
	"errors"
	"net/http"

	"github.com/deppfellow/sample-api/internal/errs"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Validate returns an *errs.HTTPError carrying the client message.
type Validatable interface {
	Validate() error
}

// invalidBodyMessage is used when a bind error carries no usable message.
const invalidBodyMessage = "Invalid request body"

// BindAndValidate binds request data into payload and validates it.
//
//  1. c.Bind populates payload from path params and the JSON body.
//  2. payload.Validate applies the request rules.
//
// Both failures come back as a 400 *errs.HTTPError. A body that is not
// JSON is ignored, so the payload validates as if it were empty.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil && !unsupportedMediaType(err) {
		return bindError(err)
	}

	if err := payload.Validate(); err != nil {
		return validationError(err)
	}

	return nil
}

// bindError turns an echo bind failure (bad path param, malformed JSON,
// wrong JSON type) into a 400 with echo's message.
func bindError(err error) *errs.HTTPError {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return errs.NewBadRequestError(msg, false, nil)
		}
	}

	return errs.NewBadRequestError(invalidBodyMessage, false, nil)
}

func unsupportedMediaType(err error) bool {
	var echoErr *echo.HTTPError
	return errors.As(err, &echoErr) && echoErr.Code == http.StatusUnsupportedMediaType
}

func validationError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	return errs.NewBadRequestError(err.Error(), false, nil)
}
