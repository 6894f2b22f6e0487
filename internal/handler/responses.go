package handler

// CreatedResponse is the body of a successful create.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// MessageResponse is the body of a successful update, replace or delete.
type MessageResponse struct {
	Message string `json:"message"`
}

const (
	MsgAgentUpdated  = "Agent updated successfully"
	MsgAgentReplaced = "Agent replaced successfully"
	MsgAgentDeleted  = "Agent deleted successfully"
)
