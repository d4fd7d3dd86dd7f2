package models

// Roles recognized by the scheduling core. Issuance and verification of
// sessions belong to the auth collaborator; the core only trusts the
// decoded principal.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// Session is the authenticated principal attached to a request.
type Session struct {
	UserID string
	Role   string
}
