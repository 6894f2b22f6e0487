package service

import (
	"context"

	"github.com/deppfellow/sample-api/internal/model"
	"github.com/deppfellow/sample-api/internal/repository"
	"github.com/deppfellow/sample-api/internal/sqlerr"
)

const agentsTable = "agents"

type AgentService struct {
	repo repository.AgentRepository
}

func NewAgentService(repo repository.AgentRepository) *AgentService {
	return &AgentService{repo: repo}
}

func (s *AgentService) List(ctx context.Context) ([]model.Agent, error) {
	agents, err := s.repo.ListAgents(ctx)
	if err != nil {
		return nil, err
	}
	if agents == nil {
		agents = []model.Agent{}
	}
	return agents, nil
}

func (s *AgentService) Create(ctx context.Context, fields model.AgentFields) (int64, error) {
	return s.repo.CreateAgent(ctx, fields)
}

// Update applies patch to agent id. A patch matching no row is a 404.
func (s *AgentService) Update(ctx context.Context, id int64, patch model.AgentPatch) error {
	rows, err := s.repo.UpdateAgent(ctx, id, patch)
	return notFoundIfNone(rows, err)
}

func (s *AgentService) Replace(ctx context.Context, id int64, fields model.AgentFields) error {
	rows, err := s.repo.ReplaceAgent(ctx, id, fields)
	return notFoundIfNone(rows, err)
}

func (s *AgentService) Delete(ctx context.Context, id int64) error {
	rows, err := s.repo.DeleteAgent(ctx, id)
	return notFoundIfNone(rows, err)
}

func notFoundIfNone(rows int64, err error) error {
	if err != nil {
		return err
	}
	if rows == 0 {
		return sqlerr.NotFound(agentsTable)
	}
	return nil
}
