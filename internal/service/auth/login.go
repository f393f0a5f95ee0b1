package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
	"github.com/heartmarshall/premier-dashboard/pkg/ctxutil"
)

// Login checks the credential pair against the configured administrator.
// Returns ErrUnauthorized for an unknown email or a wrong password.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = normalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	emailOK := subtle.ConstantTimeCompare([]byte(input.Email), []byte(s.adminEmail)) == 1
	// Always run bcrypt so an unknown email costs the same as a wrong password.
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(input.Password))
	if !emailOK || passErr != nil {
		s.log.WarnContext(ctx, "login rejected", slog.String("email", input.Email))
		return nil, domain.ErrUnauthorized
	}

	token, expires, err := s.jwt.GenerateAccessToken(s.subject, s.adminEmail, domain.UserRoleAdmin.String())
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	s.log.InfoContext(ctx, "admin logged in", slog.String("subject", s.subject.String()))

	return &AuthResult{
		AccessToken: token,
		ExpiresAt:   expires,
		Email:       s.adminEmail,
		Role:        domain.UserRoleAdmin,
	}, nil
}

// Authenticate resolves an access token into the caller's identity.
// Returns ErrUnauthorized if the token is invalid, expired or has no subject.
func (s *Service) Authenticate(ctx context.Context, token string) (ctxutil.Identity, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", slog.String("error", err.Error()))
		return ctxutil.Identity{}, domain.ErrUnauthorized
	}
	id := ctxutil.Identity{ID: claims.Subject, Role: claims.Role}
	if !id.Valid() {
		s.log.DebugContext(ctx, "token without subject")
		return ctxutil.Identity{}, domain.ErrUnauthorized
	}
	return id, nil
}
