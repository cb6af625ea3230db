package dto

// UserInsertDTO carries the data for creating a user. Password arrives in
// plaintext and is hashed by the service before it reaches the store.
type UserInsertDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserUpdateDTO carries the data for a full-record user update.
type UserUpdateDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginDTO carries a login attempt.
type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
