package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	pkgauth "github.com/tahir-sigmadevelopers/multanimango/pkg/auth"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/config"
	pkgerrors "github.com/tahir-sigmadevelopers/multanimango/pkg/errors"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/mangoapi"
)

type stubVerifier struct {
	calls  int
	result *mangoapi.LoginResult
	err    error
}

func (s *stubVerifier) Login(ctx context.Context, email, password string) (*mangoapi.LoginResult, error) {
	s.calls++
	return s.result, s.err
}

type stubSessions struct {
	created map[string]string
	revoked []string
	err     error
}

func newStubSessions() *stubSessions {
	return &stubSessions{created: map[string]string{}}
}

func (s *stubSessions) Create(ctx context.Context, sessionID, email string) error {
	if s.err != nil {
		return s.err
	}
	s.created[sessionID] = email
	return nil
}

func (s *stubSessions) Revoke(ctx context.Context, sessionID string) error {
	if s.err != nil {
		return s.err
	}
	s.revoked = append(s.revoked, sessionID)
	return nil
}

func jwtCfg() config.JWTConfig {
	return config.JWTConfig{Secret: "secret", Issuer: "multanimango", ExpirationMinutes: 60}
}

func newTestService(api *stubVerifier, sessions *stubSessions) *Service {
	return NewService(api, sessions, jwtCfg(), logger.New(logger.Options{ServiceName: "test"}))
}

func TestLoginIssuesTokenAndRecordsSession(t *testing.T) {
	api := &stubVerifier{result: &mangoapi.LoginResult{
		User:    mangoapi.User{Name: "Sheraz", Email: "admin@multanimango.pk"},
		Message: "Welcome back",
	}}
	sessions := newStubSessions()
	svc := newTestService(api, sessions)

	session, err := svc.Login(context.Background(), "admin@multanimango.pk", "secret123")
	require.NoError(t, err)
	require.Equal(t, "Welcome back", session.Message)
	require.Equal(t, "admin@multanimango.pk", session.User.Email)

	claims, err := pkgauth.ParseAccessToken(jwtCfg(), session.Token)
	require.NoError(t, err)
	require.Equal(t, "admin@multanimango.pk", claims.Email)

	// the token's jti is the recorded session
	email, ok := sessions.created[claims.ID]
	require.True(t, ok, "session must be recorded under the token jti")
	require.Equal(t, "admin@multanimango.pk", email)
}

func TestLoginValidatesBeforeNetwork(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		message  string
	}{
		{"missing email", "", "pw", "Please enter your email"},
		{"invalid email", "abc", "pw", "Please enter a valid email address"},
		{"missing password", "a@b.c", "", "Please enter your password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &stubVerifier{}
			svc := newTestService(api, newStubSessions())

			_, err := svc.Login(context.Background(), tc.email, tc.password)
			require.Error(t, err)
			require.Equal(t, tc.message, pkgerrors.As(err).Message())
			require.Equal(t, 0, api.calls)
		})
	}
}

func TestLoginPropagatesRejection(t *testing.T) {
	api := &stubVerifier{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid credentials")}
	svc := newTestService(api, newStubSessions())

	_, err := svc.Login(context.Background(), "a@b.c", "wrong")
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeUnauthorized, pkgerrors.As(err).Code())
	require.Equal(t, "Invalid credentials", pkgerrors.As(err).Message())
}

func TestLogoutRevokesSession(t *testing.T) {
	sessions := newStubSessions()
	svc := newTestService(&stubVerifier{}, sessions)

	require.NoError(t, svc.Logout(context.Background(), "sid-1"))
	require.Equal(t, []string{"sid-1"}, sessions.revoked)
}

func TestLogoutWithoutSessionFails(t *testing.T) {
	svc := newTestService(&stubVerifier{}, newStubSessions())
	err := svc.Logout(context.Background(), " ")
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeUnauthorized, pkgerrors.As(err).Code())
}
