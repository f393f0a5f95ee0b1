package domain

import "strings"

// User is a customer account shown on the users page.
type User struct {
	ID           ID         `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Points       int        `json:"points"`
	Status       UserStatus `json:"status"`
	JoinDate     Date       `json:"joinDate"`
	LastActivity Date       `json:"lastActivityDate"`
}

// Validate checks all fields and collects all errors.
func (u User) Validate() error {
	var errs fieldErrors

	if strings.TrimSpace(u.Name) == "" {
		errs.add("name", "required")
	}
	if strings.TrimSpace(u.Email) == "" {
		errs.add("email", "required")
	}
	if u.Status != "" && !u.Status.IsValid() {
		errs.add("status", "unknown status")
	}

	return errs.err()
}
