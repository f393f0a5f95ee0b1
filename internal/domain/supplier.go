package domain

import "strings"

// Supplier is a vendor the shop buys from.
type Supplier struct {
	ID      ID      `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Country Country `json:"country"`
}

// Validate checks all fields and collects all errors.
func (s Supplier) Validate() error {
	var errs fieldErrors

	if strings.TrimSpace(s.Name) == "" {
		errs.add("name", "required")
	}
	if strings.TrimSpace(s.Email) == "" {
		errs.add("email", "required")
	}
	switch {
	case s.Country == "":
		errs.add("country", "required")
	case !s.Country.IsValid():
		errs.add("country", "unknown country")
	}

	return errs.err()
}
