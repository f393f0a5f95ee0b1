package entity

import (
	"strings"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
	"github.com/heartmarshall/premier-dashboard/internal/export"
	"github.com/heartmarshall/premier-dashboard/internal/table"
)

// UserSchema describes the customer accounts table.
func UserSchema() *table.Schema[domain.User] {
	return &table.Schema[domain.User]{
		Entity: domain.EntityTypeUser,
		Fields: []table.Field[domain.User]{
			idField(func(u domain.User) domain.ID { return u.ID }),
			textField("name",
				func(u domain.User) string { return u.Name },
				func(u *domain.User, raw string) { u.Name = raw }),
			textField("email",
				func(u domain.User) string { return u.Email },
				func(u *domain.User, raw string) { u.Email = strings.TrimSpace(raw) }),
			intField("points",
				func(u domain.User) int { return u.Points },
				func(u *domain.User, v int) { u.Points = v }),
			textField("status",
				func(u domain.User) string { return u.Status.String() },
				func(u *domain.User, raw string) { u.Status = domain.UserStatus(enumKey(raw)) }),
			dateField("joinDate",
				func(u domain.User) domain.Date { return u.JoinDate },
				func(u *domain.User, d domain.Date) { u.JoinDate = d }),
			dateField("lastActivityDate",
				func(u domain.User) domain.Date { return u.LastActivity },
				func(u *domain.User, d domain.Date) { u.LastActivity = d }),
		},
		Searchable: []string{"name", "email"},
		ID:         func(u domain.User) domain.ID { return u.ID },
		SetID:      func(u *domain.User, id domain.ID) { u.ID = id },
		Template: func() domain.User {
			return domain.User{Status: domain.UserStatusActive, JoinDate: domain.Today()}
		},
		Validate: domain.User.Validate,
	}
}

// UserColumns are the exported user columns.
func UserColumns() []export.Column[domain.User] {
	return []export.Column[domain.User]{
		{Header: "column.name", Format: export.Text, Width: 25, Value: func(u domain.User) any { return u.Name }},
		{Header: "column.email", Format: export.Text, Width: 30, Value: func(u domain.User) any { return u.Email }},
		{Header: "column.points", Format: export.Integer, Width: 10, Value: func(u domain.User) any { return u.Points }},
		{Header: "column.status", Format: export.Label, Width: 15, Value: func(u domain.User) any { return userStatusKey(u.Status) }},
		{Header: "column.join_date", Format: export.Date, Width: 20, Value: func(u domain.User) any { return u.JoinDate }},
		{Header: "column.last_activity", Format: export.Date, Width: 20, Value: func(u domain.User) any { return u.LastActivity }},
	}
}

func userStatusKey(s domain.UserStatus) string {
	if s == "" {
		return ""
	}
	return "user_status." + s.String()
}

// SupplierSchema describes the suppliers table.
func SupplierSchema() *table.Schema[domain.Supplier] {
	return &table.Schema[domain.Supplier]{
		Entity: domain.EntityTypeSupplier,
		Fields: []table.Field[domain.Supplier]{
			idField(func(s domain.Supplier) domain.ID { return s.ID }),
			textField("name",
				func(s domain.Supplier) string { return s.Name },
				func(s *domain.Supplier, raw string) { s.Name = raw }),
			textField("email",
				func(s domain.Supplier) string { return s.Email },
				func(s *domain.Supplier, raw string) { s.Email = strings.TrimSpace(raw) }),
			enumField("country", "country.",
				func(s domain.Supplier) string { return s.Country.String() },
				func(s *domain.Supplier, raw string) { s.Country = domain.Country(enumKey(raw)) }),
		},
		Searchable: []string{"name", "email", "country"},
		ID:         func(s domain.Supplier) domain.ID { return s.ID },
		SetID:      func(s *domain.Supplier, id domain.ID) { s.ID = id },
		Template:   func() domain.Supplier { return domain.Supplier{} },
		Validate:   domain.Supplier.Validate,
	}
}

// SupplierColumns are the exported supplier columns.
func SupplierColumns() []export.Column[domain.Supplier] {
	return []export.Column[domain.Supplier]{
		{Header: "column.name", Format: export.Text, Width: 25, Value: func(s domain.Supplier) any { return s.Name }},
		{Header: "column.email", Format: export.Text, Width: 30, Value: func(s domain.Supplier) any { return s.Email }},
		{Header: "column.country", Format: export.Label, Width: 20, Value: func(s domain.Supplier) any { return "country." + s.Country.String() }},
	}
}

// EmployeeSchema describes the staff table. Status is a free-text role.
func EmployeeSchema() *table.Schema[domain.Employee] {
	return &table.Schema[domain.Employee]{
		Entity: domain.EntityTypeEmployee,
		Fields: []table.Field[domain.Employee]{
			idField(func(e domain.Employee) domain.ID { return e.ID }),
			textField("name",
				func(e domain.Employee) string { return e.Name },
				func(e *domain.Employee, raw string) { e.Name = raw }),
			textField("email",
				func(e domain.Employee) string { return e.Email },
				func(e *domain.Employee, raw string) { e.Email = strings.TrimSpace(raw) }),
			intField("income",
				func(e domain.Employee) int { return e.Income },
				func(e *domain.Employee, v int) { e.Income = v }),
			textField("status",
				func(e domain.Employee) string { return e.Status },
				func(e *domain.Employee, raw string) { e.Status = strings.TrimSpace(raw) }),
		},
		Searchable: []string{"name", "email"},
		ID:         func(e domain.Employee) domain.ID { return e.ID },
		SetID:      func(e *domain.Employee, id domain.ID) { e.ID = id },
		Template:   func() domain.Employee { return domain.Employee{} },
		Validate:   domain.Employee.Validate,
	}
}

// EmployeeColumns are the exported employee columns.
func EmployeeColumns() []export.Column[domain.Employee] {
	return []export.Column[domain.Employee]{
		{Header: "column.name", Format: export.Text, Width: 25, Value: func(e domain.Employee) any { return e.Name }},
		{Header: "column.email", Format: export.Text, Width: 30, Value: func(e domain.Employee) any { return e.Email }},
		{Header: "column.income", Format: export.Integer, Width: 15, Value: func(e domain.Employee) any { return e.Income }},
		{Header: "column.status", Format: export.Text, Width: 20, Value: func(e domain.Employee) any { return e.Status }},
	}
}
