package domain

const (
	RoleStartup  = "startup"
	RoleInvestor = "investor"
)

// User is the normalized identity record persisted alongside the backend
// token. RoleProfileID links to the role-specific profile document and is
// empty until the first profile save.
type User struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	RoleProfileID string `json:"roleDocumentId,omitempty"`
}

// UserPatch carries partial identity updates applied locally after a
// profile edit. Nil fields are left untouched.
type UserPatch struct {
	Username      *string
	Email         *string
	RoleProfileID *string
}

// Apply merges the patch into the user record.
func (p UserPatch) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.RoleProfileID != nil {
		u.RoleProfileID = *p.RoleProfileID
	}
}

// DashboardPath returns the landing route for the user's role.
func (u User) DashboardPath() string {
	if u.Role == RoleInvestor {
		return "/investor/dashboard"
	}
	return "/startup/dashboard"
}

// Session is the per-browser authentication state. A zero Session is the
// anonymous session.
type Session struct {
	ID            string
	Token         string
	User          User
	Authenticated bool
}

// Record is the serialized form written to the session store.
type Record struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
