package auth

import (
	"camp-pricing/internal/pkg/errs"
)

var ErrInvalidRole = errs.Mark(errs.New("invalid role"), errs.ErrValidation)

// Role is carried in access tokens. Staff can read slots and rules;
// organizers can also change them.
type Role string

const (
	RoleStaff     Role = "staff"
	RoleOrganizer Role = "organizer"
)

var roleHierarchy = map[Role]int{
	RoleStaff:     1,
	RoleOrganizer: 2,
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleHierarchy[r]; !ok {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) AtLeast(min Role) bool {
	level, ok := roleHierarchy[r]
	minLevel, minOK := roleHierarchy[min]
	return ok && minOK && level >= minLevel
}
