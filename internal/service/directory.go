package service

import (
	"context"
	"net/http"

	"github.com/chiragSahani/copilot-inbox/internal/model"
	"github.com/chiragSahani/copilot-inbox/internal/simulator"
)

// GetUsers lists all agents.
func (s *DataService) GetUsers(ctx context.Context) model.Response[[]model.User] {
	if err := s.sim.Delay(ctx, simulator.Default); err != nil {
		return model.Fail[[]model.User](http.StatusInternalServerError, "request cancelled")
	}

	if s.failInjected("get_users") {
		return model.Fail[[]model.User](http.StatusInternalServerError, "Failed to fetch users")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return model.OK(http.StatusOK, out)
}

// GetTeams lists all teams.
func (s *DataService) GetTeams(ctx context.Context) model.Response[[]model.Team] {
	if err := s.sim.Delay(ctx, simulator.Default); err != nil {
		return model.Fail[[]model.Team](http.StatusInternalServerError, "request cancelled")
	}

	if s.failInjected("get_teams") {
		return model.Fail[[]model.Team](http.StatusInternalServerError, "Failed to fetch teams")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Team, len(s.teams))
	copy(out, s.teams)
	return model.OK(http.StatusOK, out)
}
