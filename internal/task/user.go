package task

// Role is a user's access level.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleAnalyst Role = "analyst"
)

// Elevated reports whether the role may access the review workflow.
func (r Role) Elevated() bool {
	return r == RoleAdmin || r == RoleManager
}

// User is a member of the analyst directory. Read-only from this client's
// perspective; used for name resolution.
type User struct {
	ID       ID     `json:"id"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}

// Directory resolves user ids to display names.
type Directory []User

// NameFor returns the full name for id, or ok=false when the id does not
// resolve. Ids are compared as strings.
func (d Directory) NameFor(id ID) (string, bool) {
	for _, u := range d {
		if u.ID == id {
			return u.FullName, true
		}
	}
	return "", false
}
