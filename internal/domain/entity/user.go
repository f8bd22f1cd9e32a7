package entity

// User is a login account. For customers the ID equals the paired Customer ID.
type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt hash, never serialized
	Role     Role   `json:"role"`
}
