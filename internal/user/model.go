package user

type Role string

const (
	RoleUser   Role = "USER"
	RoleSeller Role = "SELLER"
	RoleAdmin  Role = "ADMIN"
)

type User struct {
	ID       int64
	Username string
	Email    string
	Password string
	Roles    []Role
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Roles    []string
}

// UserInfo is the wire shape returned by sign-in and the current-user lookup.
// The password hash never leaves the service layer.
type UserInfo struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	Token    string   `json:"token,omitempty"`
}
