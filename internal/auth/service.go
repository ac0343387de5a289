package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	pkgauth "github.com/tahir-sigmadevelopers/multanimango/pkg/auth"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/config"
	pkgerrors "github.com/tahir-sigmadevelopers/multanimango/pkg/errors"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/mangoapi"
)

type credentialVerifier interface {
	Login(ctx context.Context, email, password string) (*mangoapi.LoginResult, error)
}

type sessionRecorder interface {
	Create(ctx context.Context, sessionID, email string) error
	Revoke(ctx context.Context, sessionID string) error
}

// Service verifies admin credentials against the store backend and issues a
// local access token. The token's jti doubles as the Redis session ID, so a
// logout revokes it immediately.
type Service struct {
	api      credentialVerifier
	sessions sessionRecorder
	jwtCfg   config.JWTConfig
	logg     *logger.Logger
}

// Session is a successful login: the token the client stores plus the
// backend's user record and message.
type Session struct {
	Token   string        `json:"token"`
	User    mangoapi.User `json:"user"`
	Message string        `json:"-"`
}

func NewService(api credentialVerifier, sessions sessionRecorder, jwtCfg config.JWTConfig, logg *logger.Logger) *Service {
	return &Service{api: api, sessions: sessions, jwtCfg: jwtCfg, logg: logg}
}

// Login checks the credentials upstream, records a live session, and mints
// the access token.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Please enter your email")
	case !strings.Contains(email, "@"):
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Please enter a valid email address")
	case password == "":
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Please enter your password")
	}

	result, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.logg.Warn(s.logg.WithUserEmail(ctx, email), "admin login rejected")
		return nil, err
	}

	sessionID := uuid.NewString()
	token, err := pkgauth.MintAccessToken(s.jwtCfg, time.Now(), pkgauth.AccessTokenPayload{
		Name:  result.User.Name,
		Email: result.User.Email,
		JTI:   sessionID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to issue access token")
	}

	if err := s.sessions.Create(ctx, sessionID, result.User.Email); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to record session")
	}

	s.logg.Info(s.logg.WithUserEmail(ctx, result.User.Email), "admin logged in")

	message := result.Message
	if message == "" {
		message = "Login successful"
	}
	return &Session{Token: token, User: result.User, Message: message}, nil
}

// Logout revokes the session behind the token's jti. Revoking an already
// revoked session succeeds; logout is idempotent.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session")
	}
	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to revoke session")
	}
	return nil
}
