package auth

import (
	"time"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
)

// AuthResult is returned by Login.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	Email       string
	Role        domain.UserRole
}
