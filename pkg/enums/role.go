package enums

import "fmt"

// Role represents a platform user role.
type Role string

const (
	RoleCollector Role = "collector"
	RoleNursery   Role = "nursery"
	RolePartner   Role = "partner"
	RoleAdmin     Role = "admin"
)

var validRoles = []Role{
	RoleCollector,
	RoleNursery,
	RolePartner,
	RoleAdmin,
}

// LoginRoute is where unauthenticated (or unknown-role) traffic is sent.
const LoginRoute = "/login"

var roleHomeRoutes = map[Role]string{
	RoleAdmin:     "/admin",
	RoleCollector: "/dashboard",
	RoleNursery:   "/nursery",
	RolePartner:   "/partner",
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// HomeRoute returns the canonical dashboard route for the role. Unknown roles
// fall back to the login route.
func (r Role) HomeRoute() string {
	if route, ok := roleHomeRoutes[r]; ok {
		return route
	}
	return LoginRoute
}

// ParseRole converts raw input into a Role.
func ParseRole(value string) (Role, error) {
	for _, candidate := range validRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", value)
}
