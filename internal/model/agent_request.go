package model

import (
	"github.com/deppfellow/sample-api/internal/errs"
)

// Client-facing validation messages.
const (
	MsgMissingFields     = "Missing required fields"
	MsgNoFieldsToUpdate  = "No fields to update"
	MsgInvalidCommission = "Invalid commission value"
)

// ListRequest is the payload of the list endpoints, which take no input.
type ListRequest struct{}

func (r *ListRequest) Validate() error {
	return nil
}

// CreateAgentRequest is the body of POST /agents.
type CreateAgentRequest struct {
	Name        string     `json:"name"`
	WorkingArea string     `json:"working_area"`
	Commission  Commission `json:"commission"`
}

func (r *CreateAgentRequest) Validate() error {
	return validateComplete(r.Name, r.WorkingArea, r.Commission)
}

// Fields returns the columns to insert, commission rounded.
func (r *CreateAgentRequest) Fields() AgentFields {
	return AgentFields{
		Name:        r.Name,
		WorkingArea: r.WorkingArea,
		Commission:  r.Commission.Rounded(),
	}
}

// ReplaceAgentRequest is PUT /agents/{id}.
type ReplaceAgentRequest struct {
	ID          int64      `param:"id" json:"-"`
	Name        string     `json:"name"`
	WorkingArea string     `json:"working_area"`
	Commission  Commission `json:"commission"`
}

func (r *ReplaceAgentRequest) Validate() error {
	return validateComplete(r.Name, r.WorkingArea, r.Commission)
}

func (r *ReplaceAgentRequest) Fields() AgentFields {
	return AgentFields{
		Name:        r.Name,
		WorkingArea: r.WorkingArea,
		Commission:  r.Commission.Rounded(),
	}
}

// UpdateAgentRequest is PATCH /agents/{id}. Only truthy fields are
// applied.
type UpdateAgentRequest struct {
	ID          int64      `param:"id" json:"-"`
	Name        string     `json:"name"`
	WorkingArea string     `json:"working_area"`
	Commission  Commission `json:"commission"`
}

func (r *UpdateAgentRequest) Validate() error {
	if r.Name == "" && r.WorkingArea == "" && !r.Commission.Truthy() {
		return errs.NewBadRequestError(MsgNoFieldsToUpdate, true, nil)
	}

	if r.Commission.Truthy() && !r.Commission.Valid() {
		return errs.NewBadRequestError(MsgInvalidCommission, true, nil)
	}

	return nil
}

// Patch returns the supplied columns.
func (r *UpdateAgentRequest) Patch() AgentPatch {
	var patch AgentPatch

	if r.Name != "" {
		name := r.Name
		patch.Name = &name
	}

	if r.WorkingArea != "" {
		area := r.WorkingArea
		patch.WorkingArea = &area
	}

	if r.Commission.Truthy() {
		commission := r.Commission.Rounded()
		patch.Commission = &commission
	}

	return patch
}

// DeleteAgentRequest is DELETE /agents/{id}.
type DeleteAgentRequest struct {
	ID int64 `param:"id"`
}

func (r *DeleteAgentRequest) Validate() error {
	return nil
}

func validateComplete(name, workingArea string, commission Commission) error {
	if name == "" || workingArea == "" || !commission.Truthy() {
		return errs.NewBadRequestError(MsgMissingFields, true, nil)
	}

	if !commission.Valid() {
		return errs.NewBadRequestError(MsgInvalidCommission, true, nil)
	}

	return nil
}
