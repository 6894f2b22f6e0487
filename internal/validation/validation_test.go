package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/corbym/gocrest/is"
	"github.com/corbym/gocrest/then"
	"github.com/deppfellow/sample-api/internal/errs"
	"github.com/labstack/echo/v4"
)

type renameRequest struct {
	ID   int64  `param:"id" json:"-"`
	Name string `json:"name"`
}

func (r *renameRequest) Validate() error {
	if len(r.Name) > 5 {
		return errors.New("name too long")
	}
	return nil
}

type rejectingRequest struct {
	Name string `json:"name"`
}

func (r *rejectingRequest) Validate() error {
	if r.Name == "" {
		return errs.NewBadRequestError("Missing required fields", true, nil)
	}
	return nil
}

func newContext(body, contentType, id string) echo.Context {
	req := httptest.NewRequest(http.MethodPatch, "/things/"+id, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}

	c := echo.New().NewContext(req, httptest.NewRecorder())
	c.SetPath("/things/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func badRequest(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	then.AssertThat(t, errors.As(err, &httpErr), is.EqualTo(true))
	then.AssertThat(t, httpErr.Status, is.EqualTo(http.StatusBadRequest))
	return httpErr
}

func TestBindAndValidateSuccess(t *testing.T) {
	req := &renameRequest{}
	err := BindAndValidate(newContext(`{"name":"Alex"}`, echo.MIMEApplicationJSON, "12"), req)

	then.AssertThat(t, err, is.Nil())
	then.AssertThat(t, req.ID, is.EqualTo(int64(12)))
	then.AssertThat(t, req.Name, is.EqualTo("Alex"))
}

func TestBindAndValidateBodyCannotOverrideID(t *testing.T) {
	req := &renameRequest{}
	err := BindAndValidate(newContext(`{"name":"Alex","ID":99}`, echo.MIMEApplicationJSON, "12"), req)

	then.AssertThat(t, err, is.Nil())
	then.AssertThat(t, req.ID, is.EqualTo(int64(12)))
}

func TestBindAndValidateBadPathParam(t *testing.T) {
	err := BindAndValidate(newContext(`{"name":"Alex"}`, echo.MIMEApplicationJSON, "abc"), &renameRequest{})
	badRequest(t, err)
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	err := BindAndValidate(newContext(`{"name":`, echo.MIMEApplicationJSON, "1"), &renameRequest{})
	badRequest(t, err)
}

func TestBindAndValidateWrongType(t *testing.T) {
	err := BindAndValidate(newContext(`{"name":5}`, echo.MIMEApplicationJSON, "1"), &renameRequest{})

	httpErr := badRequest(t, err)
	then.AssertThat(t, httpErr.Message != "", is.EqualTo(true))
}

func TestBindAndValidatePlainError(t *testing.T) {
	err := BindAndValidate(newContext(`{"name":"Alexander"}`, echo.MIMEApplicationJSON, "1"), &renameRequest{})

	httpErr := badRequest(t, err)
	then.AssertThat(t, httpErr.Message, is.EqualTo("name too long"))
}

func TestBindAndValidateCustomError(t *testing.T) {
	err := BindAndValidate(newContext(`{}`, echo.MIMEApplicationJSON, "1"), &rejectingRequest{})

	httpErr := badRequest(t, err)
	then.AssertThat(t, httpErr.Message, is.EqualTo("Missing required fields"))
}

func TestBindAndValidateIgnoresNonJSONBody(t *testing.T) {
	err := BindAndValidate(newContext(`name=Alex`, "text/plain", "1"), &rejectingRequest{})

	httpErr := badRequest(t, err)
	then.AssertThat(t, httpErr.Message, is.EqualTo("Missing required fields"))
}
