package identity

import "littlelemon/internal/core/domain/model/kernel"

// Principal is the authenticated caller of a single request. The zero
// value is the anonymous caller.
type Principal struct {
	userID   kernel.UUID
	username string
	roles    RoleSet
}

func NewPrincipal(userID kernel.UUID, username string, roles RoleSet) Principal {
	return Principal{userID: userID, username: username, roles: roles}
}

func Anonymous() Principal {
	return Principal{}
}

func (p Principal) IsAuthenticated() bool {
	return p.userID.Validate() == nil
}

func (p Principal) UserID() kernel.UUID { return p.userID }
func (p Principal) Username() string    { return p.username }
func (p Principal) Roles() RoleSet      { return p.roles }
