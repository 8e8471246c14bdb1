package models

// UserColumns is the header row of the Users sheet
var UserColumns = []string{"ID", "Username", "Password", "Role", "FullName", "Email", "LastLogin", "CreatedAt"}

// Role is a user's access tier: admin > agent > viewer
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleAgent  Role = "agent"
	RoleViewer Role = "viewer"
)

// ParseRole validates a role name
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleAdmin, RoleAgent, RoleViewer:
		return r, true
	default:
		return "", false
	}
}

// Rank orders roles; unknown roles rank 0
func (r Role) Rank() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleAgent:
		return 2
	case RoleViewer:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r ranks at or above min
func (r Role) AtLeast(min Role) bool {
	return r.Rank() > 0 && r.Rank() >= min.Rank()
}

// User is one row of the Users sheet. The password hash is never serialized.
type User struct {
	ID        string `json:"ID"`
	Username  string `json:"Username"`
	Password  string `json:"-"`
	Role      Role   `json:"Role"`
	FullName  string `json:"FullName"`
	Email     string `json:"Email"`
	LastLogin string `json:"LastLogin"`
	CreatedAt string `json:"CreatedAt"`
}

// RegisterInput is a registration request. An unrecognized role is not an
// error; the service falls back to agent.
type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// UpdateUserInput is a profile update; empty fields are left unchanged
type UpdateUserInput struct {
	Password string `json:"password"`
	Role     string `json:"role" binding:"omitempty,role"`
	FullName string `json:"fullName"`
	Email    string `json:"email" binding:"omitempty,email"`
}

func UserFromRecord(r map[string]string) User {
	return User{
		ID:        r["ID"],
		Username:  r["Username"],
		Password:  r["Password"],
		Role:      Role(r["Role"]),
		FullName:  r["FullName"],
		Email:     r["Email"],
		LastLogin: r["LastLogin"],
		CreatedAt: r["CreatedAt"],
	}
}

func (u User) Record() map[string]string {
	return map[string]string{
		"ID":        u.ID,
		"Username":  u.Username,
		"Password":  u.Password,
		"Role":      string(u.Role),
		"FullName":  u.FullName,
		"Email":     u.Email,
		"LastLogin": u.LastLogin,
		"CreatedAt": u.CreatedAt,
	}
}
