package access

import (
	"fmt"
	"strings"
)

// Role is a user's role on a record, from the record_user table. Higher roles
// imply all lower ones.
type Role int

const (
	None Role = iota
	Guest
	Viewer
	Editor
	Manager
	Owner
)

var roleNames = map[Role]string{
	None:    "none",
	Guest:   "guest",
	Viewer:  "viewer",
	Editor:  "editor",
	Manager: "manager",
	Owner:   "owner",
}

func (r Role) String() string {
	if name, known := roleNames[r]; known {
		return name
	}
	return fmt.Sprintf("unknown role (%d)", int(r))
}

func (r Role) Implies(other Role) bool {
	return r >= other
}

func RoleFromString(name string) (Role, bool) {
	for role, roleName := range roleNames {
		if roleName == strings.ToLower(name) {
			return role, true
		}
	}
	return None, false
}

// Action is a permission-checked operation on a record.
type Action string

const (
	ActionRead            Action = "read"
	ActionAddCommunity    Action = "add_community"
	ActionRemoveCommunity Action = "remove_community"
)

// MinimumRole returns the weakest role that grants the given action.
// Membership changes require at least Editor; reading requires at least Guest.
func MinimumRole(action Action) Role {
	switch action {
	case ActionAddCommunity, ActionRemoveCommunity:
		return Editor
	default:
		return Guest
	}
}
