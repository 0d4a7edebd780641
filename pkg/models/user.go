package models

import "github.com/ensigotrace/ensigotrace-backend/pkg/enums"

// User is an identity record. Users come from a static seed list and are
// never created at runtime.
type User struct {
	ID     string     `json:"id"`
	Email  string     `json:"email"`
	Name   string     `json:"name"`
	Role   enums.Role `json:"role"`
	Region string     `json:"region,omitempty"`
}

// SeedUser is the stored form of a User: the demo password rides along in the
// seed list and is stripped before a User ever leaves the auth repository.
type SeedUser struct {
	User
	Password string `json:"password"`
}
