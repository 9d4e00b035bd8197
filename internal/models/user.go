package models

// Role is the capability tier of the current session. It is
// process-local and never persisted.
type Role string

const (
	RoleGuest    Role = "guest"
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
)
