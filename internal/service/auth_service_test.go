// FILE: internal/service/auth_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"salesdesk-be/internal/dto"
	"salesdesk-be/internal/mapper"
	"salesdesk-be/internal/pkg/logger"
	"salesdesk-be/internal/pkg/scheduler"
	"salesdesk-be/internal/repository/memory"
	"salesdesk-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSheetRepository struct {
	grids map[string][][]string
	err   error
}

func (r *stubSheetRepository) Values(_ context.Context, a1Range string) ([][]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.grids[a1Range], nil
}

const testUsersRange = "Sheet2!A1:Z100"

func newTestAuthService(t *testing.T, sheets *stubSheetRepository) (IAuthService, *stubPublisher) {
	t.Helper()
	pub := &stubPublisher{}
	log := logger.NewNopLogger()
	sessions := NewSessionService(
		memory.NewSessionRepository(),
		scheduler.NewManual(),
		pub,
		log,
		10*time.Minute,
		4*time.Second,
		7,
	)
	return NewAuthService(sheets, mapper.NewRosterMapper(), sessions, pub, log, testUsersRange), pub
}

func userGrid() map[string][][]string {
	return map[string][][]string{
		testUsersRange: {
			{"Username", "Password"},
			{"alice", "s3cret"},
			{"bob", "hunter2"},
		},
	}
}

func TestLoginSuccess(t *testing.T) {
	svc, pub := newTestAuthService(t, &stubSheetRepository{grids: userGrid()})

	res, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Username)
	assert.NotEmpty(t, res.Token)
	assert.Len(t, pub.byType(events.TypeUserLogin), 1)

	session := svc.Session(context.Background(), res.Token)
	assert.True(t, session.Authenticated)
	assert.Equal(t, "alice", session.Username)
}

func TestLoginFailureIsUniform(t *testing.T) {
	svc, _ := newTestAuthService(t, &stubSheetRepository{grids: userGrid()})

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "alice", "nope"},
		{"unknown user", "carol", "s3cret"},
		{"swapped credentials", "s3cret", "alice"},
		{"empty password", "alice", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: tc.username, Password: tc.password})
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestLoginIsCaseSensitive(t *testing.T) {
	svc, _ := newTestAuthService(t, &stubSheetRepository{grids: userGrid()})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "Alice", Password: "s3cret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginSheetFailureIsNotUniform(t *testing.T) {
	svc, _ := newTestAuthService(t, &stubSheetRepository{err: errors.New("boom")})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "s3cret"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials, "a backend failure is not a credential failure")
}

func TestLogoutEndsSession(t *testing.T) {
	svc, _ := newTestAuthService(t, &stubSheetRepository{grids: userGrid()})

	res, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "bob", Password: "hunter2"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), res.Token))
	session := svc.Session(context.Background(), res.Token)
	assert.False(t, session.Authenticated)
	assert.False(t, session.AutoLoggedOut)

	assert.Error(t, svc.Logout(context.Background(), res.Token))
}

func TestSessionUnknownToken(t *testing.T) {
	svc, _ := newTestAuthService(t, &stubSheetRepository{grids: userGrid()})

	session := svc.Session(context.Background(), "no-such-token")
	assert.False(t, session.Authenticated)
	assert.Empty(t, session.Username)
}
