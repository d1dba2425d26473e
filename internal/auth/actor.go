package auth

type Role string

const (
	RoleClient Role = "CLIENT"
	RoleAdmin  Role = "ADMIN"
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID uint
	Role   Role
}

func (a Actor) IsStaff() bool {
	return a.Role == RoleAdmin
}

func (a Actor) Owns(userID uint) bool {
	return a.UserID != 0 && a.UserID == userID
}

// CanAccess is true for the owner of a resource and for staff.
func (a Actor) CanAccess(ownerID uint) bool {
	return a.IsStaff() || a.Owns(ownerID)
}

func ParseRole(s string) Role {
	if Role(s) == RoleAdmin {
		return RoleAdmin
	}
	return RoleClient
}
