package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/corbym/gocrest/is"
	"github.com/corbym/gocrest/then"
	"github.com/deppfellow/sample-api/internal/errs"
	"github.com/shopspring/decimal"
)

func decodeCommission(t *testing.T, raw string) Commission {
	t.Helper()

	var body struct {
		Commission Commission `json:"commission"`
	}
	err := json.Unmarshal([]byte(`{"commission":`+raw+`}`), &body)
	then.AssertThat(t, err, is.Nil())
	return body.Commission
}

func TestCommissionTruthiness(t *testing.T) {
	cases := []struct {
		raw    string
		truthy bool
		valid  bool
	}{
		{`null`, false, false},
		{`false`, false, false},
		{`0`, false, true},
		{`""`, false, false},
		{`"0"`, true, true},
		{`0.155`, true, true},
		{`"0.155"`, true, true},
		{`"abc"`, true, false},
		{`true`, true, false},
		{`{}`, true, false},
		{`1e5000000`, true, false},
		{`"1e20000000"`, true, false},
		{`1e-20000000`, true, false},
		{`"0e-20000000"`, true, false},
		{`1234567890123456789012345678901`, true, false},
		{`123456789012345678901234567890`, true, true},
		{`"0.000000000000000000000000000001"`, true, true},
	}

	for _, tc := range cases {
		c := decodeCommission(t, tc.raw)
		then.AssertThat(t, c.Truthy(), is.EqualTo(tc.truthy))
		then.AssertThat(t, c.Valid(), is.EqualTo(tc.valid))
	}
}

func TestCommissionAbsent(t *testing.T) {
	var body CreateAgentRequest
	then.AssertThat(t, json.Unmarshal([]byte(`{}`), &body), is.Nil())
	then.AssertThat(t, body.Commission.Truthy(), is.EqualTo(false))
	then.AssertThat(t, body.Commission.Valid(), is.EqualTo(false))
}

func TestCommissionOutOfBoundsIsRejected(t *testing.T) {
	for _, raw := range []string{`1e5000000`, `"1e20000000"`, `1e-20000000`, `"0e-20000000"`} {
		req := CreateAgentRequest{Name: "Ramesh", WorkingArea: "Bangalore", Commission: decodeCommission(t, raw)}

		status, msg := statusOf(t, req.Validate())
		then.AssertThat(t, status, is.EqualTo(400))
		then.AssertThat(t, msg, is.EqualTo(MsgInvalidCommission))
	}

	patch := UpdateAgentRequest{ID: 1, Commission: decodeCommission(t, `1e20000000`)}
	_, msg := statusOf(t, patch.Validate())
	then.AssertThat(t, msg, is.EqualTo(MsgInvalidCommission))
}

func TestCommissionRounding(t *testing.T) {
	cases := map[string]string{
		`"0.155"`:  "0.16",
		`0.155`:    "0.16",
		`0.154`:    "0.15",
		`"-0.155"`: "-0.16",
		`12`:       "12",
		`"0.1"`:    "0.1",
	}

	for raw, want := range cases {
		c := decodeCommission(t, raw)
		then.AssertThat(t, c.Rounded().String(), is.EqualTo(want))
	}
}

func statusOf(t *testing.T, err error) (int, string) {
	t.Helper()

	var httpErr *errs.HTTPError
	then.AssertThat(t, errors.As(err, &httpErr), is.EqualTo(true))
	return httpErr.Status, httpErr.Message
}

func TestCreateAgentRequestValidate(t *testing.T) {
	valid := CreateAgentRequest{Name: "Ramesh", WorkingArea: "Bangalore", Commission: decodeCommission(t, `"0.155"`)}
	then.AssertThat(t, valid.Validate(), is.Nil())
	then.AssertThat(t, valid.Fields().Commission.String(), is.EqualTo("0.16"))

	missing := CreateAgentRequest{Name: "Ramesh", Commission: decodeCommission(t, `0.1`)}
	status, msg := statusOf(t, missing.Validate())
	then.AssertThat(t, status, is.EqualTo(400))
	then.AssertThat(t, msg, is.EqualTo(MsgMissingFields))

	zero := CreateAgentRequest{Name: "Ramesh", WorkingArea: "Bangalore", Commission: decodeCommission(t, `0`)}
	_, msg = statusOf(t, zero.Validate())
	then.AssertThat(t, msg, is.EqualTo(MsgMissingFields))

	invalid := CreateAgentRequest{Name: "Ramesh", WorkingArea: "Bangalore", Commission: decodeCommission(t, `"abc"`)}
	_, msg = statusOf(t, invalid.Validate())
	then.AssertThat(t, msg, is.EqualTo(MsgInvalidCommission))

	// Missing fields win over an invalid commission.
	both := CreateAgentRequest{Commission: decodeCommission(t, `"abc"`)}
	_, msg = statusOf(t, both.Validate())
	then.AssertThat(t, msg, is.EqualTo(MsgMissingFields))
}

func TestUpdateAgentRequestPatch(t *testing.T) {
	empty := UpdateAgentRequest{ID: 1, Commission: decodeCommission(t, `0`)}
	_, msg := statusOf(t, empty.Validate())
	then.AssertThat(t, msg, is.EqualTo(MsgNoFieldsToUpdate))

	req := UpdateAgentRequest{ID: 1, WorkingArea: "Chennai"}
	then.AssertThat(t, req.Validate(), is.Nil())

	patch := req.Patch()
	then.AssertThat(t, patch.Name == nil, is.EqualTo(true))
	then.AssertThat(t, patch.Commission == nil, is.EqualTo(true))
	then.AssertThat(t, *patch.WorkingArea, is.EqualTo("Chennai"))
	then.AssertThat(t, patch.Empty(), is.EqualTo(false))

	invalid := UpdateAgentRequest{ID: 1, Commission: decodeCommission(t, `"x"`)}
	_, msg = statusOf(t, invalid.Validate())
	then.AssertThat(t, msg, is.EqualTo(MsgInvalidCommission))

	rounded := UpdateAgentRequest{ID: 1, Commission: decodeCommission(t, `0.125`)}
	then.AssertThat(t, rounded.Patch().Commission.String(), is.EqualTo("0.13"))
}

func TestAgentJSON(t *testing.T) {
	agent := Agent{ID: 7, Name: "Alex", WorkingArea: "London", Commission: decimal.RequireFromString("0.16")}

	out, err := json.Marshal(agent)
	then.AssertThat(t, err, is.Nil())
	then.AssertThat(t, string(out), is.EqualTo(`{"id":7,"name":"Alex","working_area":"London","commission":0.16}`))
}

func TestDate(t *testing.T) {
	var d Date
	then.AssertThat(t, d.Scan(time.Date(2008, 7, 20, 0, 0, 0, 0, time.UTC)), is.Nil())
	then.AssertThat(t, d.String(), is.EqualTo("2008-07-20"))

	then.AssertThat(t, d.Scan([]byte("2008-09-25")), is.Nil())
	then.AssertThat(t, d.String(), is.EqualTo("2008-09-25"))

	then.AssertThat(t, d.Scan("2008-10-01 00:00:00"), is.Nil())
	then.AssertThat(t, d.String(), is.EqualTo("2008-10-01"))

	then.AssertThat(t, d.Scan(42), is.Not(is.Nil()))

	order := Order{ID: 200100, OrderDate: d, Amount: decimal.RequireFromString("1000.00")}
	out, err := json.Marshal(order)
	then.AssertThat(t, err, is.Nil())
	then.AssertThat(t, string(out), is.EqualTo(`{"id":200100,"order_date":"2008-10-01","amount":1000}`))
}
