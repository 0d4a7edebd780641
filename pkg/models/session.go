package models

// Session is the client-held proof of an authenticated user: the user record
// plus an opaque token. A session either references exactly one valid user or
// does not exist; partial or corrupt records are treated as absent.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
