package ports

import (
	"context"

	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/domain"
)

// Permissions checked outside the per-office role model.
const (
	PermissionReadAllOffices = "appointments:read_all"
)

// Authorizer answers role and permission questions for the lifecycle engine.
// A false answer is surfaced to callers as domain.ErrForbidden. The engine
// only reads memberships; it never grants or revokes them.
type Authorizer interface {
	// HasRole reports whether the user holds any of the given roles at the
	// office.
	HasRole(ctx context.Context, userID, officeID string, roles ...string) (bool, error)
	// HasPermission reports whether the user holds a global permission.
	HasPermission(ctx context.Context, userID, permission string) (bool, error)
}

// MembershipAdmin is the write side of office memberships, exposed only to
// the admin surface. Granting the same membership twice is a no-op.
type MembershipAdmin interface {
	Grant(ctx context.Context, m domain.OfficeMembership) error
}
