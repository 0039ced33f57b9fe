// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"salesdesk-be/internal/dto"
	"salesdesk-be/internal/mapper"
	"salesdesk-be/internal/pkg/logger"
	"salesdesk-be/internal/repository/contract"
	"salesdesk-be/pkg/events"
)

// ErrInvalidCredentials is deliberately uniform: the login form never learns
// whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	Session(ctx context.Context, token string) *dto.SessionResponse
}

type authService struct {
	sheets     contract.SheetRepository
	roster     *mapper.RosterMapper
	sessions   ISessionService
	publisher  IPublisherService
	logger     logger.ILogger
	usersRange string
}

func NewAuthService(
	sheets contract.SheetRepository,
	roster *mapper.RosterMapper,
	sessions ISessionService,
	publisher IPublisherService,
	log logger.ILogger,
	usersRange string,
) IAuthService {
	return &authService{
		sheets:     sheets,
		roster:     roster,
		sessions:   sessions,
		publisher:  publisher,
		logger:     log,
		usersRange: usersRange,
	}
}

// Login checks the submitted pair against the user sheet by exact plain-text
// equality and opens a session on a match.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	grid, err := s.sheets.Values(ctx, s.usersRange)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	for _, user := range s.roster.GridToUsers(grid) {
		if user.Username == req.Username && user.Password == req.Password {
			session := s.sessions.Create(user.Username)

			if err := s.publisher.Publish(ctx, events.NewUserLogin(user.Username)); err != nil {
				s.logger.Warn("AuthService", "Failed to publish login event", map[string]interface{}{"error": err.Error()})
			}
			return &dto.LoginResponse{
				Token:    session.Token,
				Username: session.Username,
			}, nil
		}
	}

	s.logger.Info("AuthService", "Rejected login attempt", map[string]interface{}{"username": req.Username})
	return nil, ErrInvalidCredentials
}

func (s *authService) Logout(_ context.Context, token string) error {
	if !s.sessions.Logout(token) {
		return errors.New("no active session")
	}
	return nil
}

// Session resolves a persisted token back into an identity. For a dead token
// it also reports whether the auto-logout notice is still pending, so a
// reloading client can show the banner.
func (s *authService) Session(_ context.Context, token string) *dto.SessionResponse {
	if session, ok := s.sessions.Resolve(token); ok {
		return &dto.SessionResponse{
			Authenticated: true,
			Username:      session.Username,
		}
	}
	return &dto.SessionResponse{
		Authenticated: false,
		AutoLoggedOut: s.sessions.NoticePending(token),
	}
}
