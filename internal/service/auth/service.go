// Package auth authenticates the single configured dashboard administrator.
package auth

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/premier-dashboard/internal/auth"
	"github.com/heartmarshall/premier-dashboard/internal/config"
)

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(subject uuid.UUID, email, role string) (string, time.Time, error)
	ValidateAccessToken(token string) (auth.Claims, error)
}

// Service implements auth operations.
type Service struct {
	log          *slog.Logger
	jwt          jwtManager
	adminEmail   string
	passwordHash []byte
	subject      uuid.UUID
}

// NewService creates a new auth service instance. The admin password is
// hashed once here and never kept in plain text.
func NewService(logger *slog.Logger, jwt jwtManager, cfg config.AuthConfig) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth.NewService hash password: %w", err)
	}
	email := normalizeEmail(cfg.AdminEmail)

	return &Service{
		log:          logger.With("service", "auth"),
		jwt:          jwt,
		adminEmail:   email,
		passwordHash: hash,
		subject:      SubjectFor(email),
	}, nil
}

// SubjectFor derives the stable account id carried in tokens for an email.
func SubjectFor(email string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+normalizeEmail(email)))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
