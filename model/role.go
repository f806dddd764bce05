package model

import "fmt"

// Role is the closed set of identities the authorization gate understands.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
	RoleCompany Role = "company"
)

// ParseRole validates a form-submitted role value. Registration additionally
// rejects RoleAdmin; that rule lives in the service, not here.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleStudent, RoleCompany:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string {
	return string(r)
}
