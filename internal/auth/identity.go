package auth

import "github.com/google/uuid"

// Identity is the caller resolved from a bearer token.
type Identity struct {
	UserID uuid.UUID
	// Role is empty for regular users; ctxutil.RoleAdmin grants the admin routes.
	Role string
}
