// Package model holds the rows read from and written to the database and
// the request payloads accepted by the agent endpoints.
package model

import "github.com/shopspring/decimal"

func init() {
	// Decimals go out as JSON numbers (0.16), not strings ("0.16").
	decimal.MarshalJSONWithoutQuotes = true
}

// Agent is a row of the agents table.
type Agent struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	WorkingArea string          `json:"working_area" db:"working_area"`
	Commission  decimal.Decimal `json:"commission" db:"commission"`
}

// Customer is a row of the customer table.
type Customer struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	City string `json:"city" db:"city"`
}

// Order is a row of the orders table.
type Order struct {
	ID        int64           `json:"id" db:"id"`
	OrderDate Date            `json:"order_date" db:"order_date"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
}

// AgentFields is a complete set of writable agent columns, used by
// create and replace.
type AgentFields struct {
	Name        string
	WorkingArea string
	Commission  decimal.Decimal
}

// AgentPatch carries the columns a partial update changes. A nil field
// is left untouched.
type AgentPatch struct {
	Name        *string
	WorkingArea *string
	Commission  *decimal.Decimal
}

// Empty reports whether the patch changes nothing.
func (p AgentPatch) Empty() bool {
	return p.Name == nil && p.WorkingArea == nil && p.Commission == nil
}
