package models

// User defines the user model based on the 'users' table.
// Password always holds a bcrypt hash, never the plaintext.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-" db:"password"`
}
