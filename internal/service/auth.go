package service

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/chiragSahani/copilot-inbox/internal/model"
	"github.com/chiragSahani/copilot-inbox/internal/simulator"
)

// Login authenticates by email. The password is accepted but not
// checked; this backend fabricates auth for the demo UI. A successful
// login mints a signed token and makes the user current.
func (s *DataService) Login(ctx context.Context, email, password string) model.Response[*model.LoginResult] {
	if err := s.sim.Delay(ctx, simulator.Default); err != nil {
		return model.Fail[*model.LoginResult](http.StatusInternalServerError, "request cancelled")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var user *model.User
	for i := range s.users {
		if s.users[i].Email == email {
			user = &s.users[i]
			break
		}
	}

	if user == nil || s.failInjected("login") {
		return model.Fail[*model.LoginResult](http.StatusUnauthorized, "Invalid email or password")
	}

	token, err := s.mintToken(*user)
	if err != nil {
		s.logger.Error("failed to sign token", zap.Error(err))
		return model.Fail[*model.LoginResult](http.StatusInternalServerError, "Failed to log in")
	}

	s.authToken = token
	s.currentUser = *user

	return model.OK(http.StatusOK, &model.LoginResult{
		User:  *user,
		Token: token,
	})
}

// Logout clears the auth token.
func (s *DataService) Logout(ctx context.Context) model.Response[*struct{}] {
	if err := s.sim.Delay(ctx, simulator.Quick); err != nil {
		return model.Fail[*struct{}](http.StatusInternalServerError, "request cancelled")
	}

	if s.failInjected("logout") {
		return model.Fail[*struct{}](http.StatusInternalServerError, "Failed to log out")
	}

	s.mu.Lock()
	s.authToken = ""
	s.mu.Unlock()

	return model.OK[*struct{}](http.StatusOK, nil)
}

// CurrentUser returns the authenticated user, or 401 when no login has
// happened.
func (s *DataService) CurrentUser(ctx context.Context) model.Response[*model.User] {
	if err := s.sim.Delay(ctx, simulator.Quick); err != nil {
		return model.Fail[*model.User](http.StatusInternalServerError, "request cancelled")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.authToken == "" {
		return model.Fail[*model.User](http.StatusUnauthorized, "Not authenticated")
	}

	user := s.currentUser
	return model.OK(http.StatusOK, &user)
}

func (s *DataService) mintToken(user model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
