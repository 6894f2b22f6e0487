package handler

import (
	"github.com/deppfellow/sample-api/internal/model"
	"github.com/deppfellow/sample-api/internal/server"
	"github.com/deppfellow/sample-api/internal/service"
	"github.com/labstack/echo/v4"
)

// AgentHandler serves the /agents resource.
type AgentHandler struct {
	Handler
	agents *service.AgentService
}

func NewAgentHandler(s *server.Server, agents *service.AgentService) *AgentHandler {
	return &AgentHandler{
		Handler: NewHandler(s),
		agents:  agents,
	}
}

func (h *AgentHandler) ListAgents(c echo.Context, _ *model.ListRequest) ([]model.Agent, error) {
	return h.agents.List(c.Request().Context())
}

func (h *AgentHandler) CreateAgent(c echo.Context, req *model.CreateAgentRequest) (*CreatedResponse, error) {
	id, err := h.agents.Create(c.Request().Context(), req.Fields())
	if err != nil {
		return nil, err
	}
	return &CreatedResponse{ID: id}, nil
}

func (h *AgentHandler) UpdateAgent(c echo.Context, req *model.UpdateAgentRequest) (*MessageResponse, error) {
	if err := h.agents.Update(c.Request().Context(), req.ID, req.Patch()); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: MsgAgentUpdated}, nil
}

func (h *AgentHandler) ReplaceAgent(c echo.Context, req *model.ReplaceAgentRequest) (*MessageResponse, error) {
	if err := h.agents.Replace(c.Request().Context(), req.ID, req.Fields()); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: MsgAgentReplaced}, nil
}

func (h *AgentHandler) DeleteAgent(c echo.Context, req *model.DeleteAgentRequest) (*MessageResponse, error) {
	if err := h.agents.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: MsgAgentDeleted}, nil
}
