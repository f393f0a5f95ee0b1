package domain

import "strings"

// Employee is a member of staff. Status holds the free-text role, e.g. "manager".
type Employee struct {
	ID     ID     `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Income int    `json:"income"`
	Status string `json:"status"`
}

// Validate checks all fields and collects all errors.
func (e Employee) Validate() error {
	var errs fieldErrors

	if strings.TrimSpace(e.Name) == "" {
		errs.add("name", "required")
	}
	if strings.TrimSpace(e.Email) == "" {
		errs.add("email", "required")
	}

	return errs.err()
}
