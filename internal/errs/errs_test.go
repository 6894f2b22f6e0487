package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/corbym/gocrest/is"
	"github.com/corbym/gocrest/then"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	then.AssertThat(t, MakeUpperCaseWithUnderscores("Bad Request"), is.EqualTo("BAD_REQUEST"))
	then.AssertThat(t, MakeUpperCaseWithUnderscores("Not Found"), is.EqualTo("NOT_FOUND"))
}

func TestNewStorageErrorKeepsRawMessage(t *testing.T) {
	cause := errors.New(`relation "agents" does not exist`)
	err := NewStorageError(cause, nil)

	then.AssertThat(t, err.Status, is.EqualTo(http.StatusInternalServerError))
	then.AssertThat(t, err.Body(), is.EqualTo(Response{Error: `relation "agents" does not exist`}))
	then.AssertThat(t, errors.Is(err, cause), is.EqualTo(true))
}

func TestHTTPErrorIsMatchesType(t *testing.T) {
	err := NewNotFoundError("Agent not found", true, nil)

	then.AssertThat(t, errors.Is(err, &HTTPError{}), is.EqualTo(true))
	then.AssertThat(t, err.Code, is.EqualTo("NOT_FOUND"))
}

func TestWithMessageCopies(t *testing.T) {
	code := "AGENT_INVALID"
	base := NewBadRequestError("Missing required fields", true, &code)
	copied := base.WithMessage("No fields to update")

	then.AssertThat(t, base.Message, is.EqualTo("Missing required fields"))
	then.AssertThat(t, copied.Message, is.EqualTo("No fields to update"))
	then.AssertThat(t, copied.Code, is.EqualTo("AGENT_INVALID"))
	then.AssertThat(t, copied.Status, is.EqualTo(http.StatusBadRequest))
}
