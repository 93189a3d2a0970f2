package model

import "slices"

const RoleCardOwner = "CARD-OWNER"

// Principal is the identity resolved from request credentials.
type Principal struct {
	Name  string
	Roles []string
}

func (p *Principal) HasRole(role string) bool {
	return p != nil && slices.Contains(p.Roles, role)
}
