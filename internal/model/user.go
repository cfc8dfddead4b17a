package model

import "golang.org/x/crypto/bcrypt"

// EntityUsers is the storage key for the user collection.
const EntityUsers = "users"

// User represents a console operator account. The stored password is a
// bcrypt hash; the plaintext never leaves the create/login paths.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
	Role     Role   `json:"role" validate:"required,role"`

	// TokenVersion enforces a single active session per user: tokens minted
	// for older versions stop validating once a new login rotates it.
	TokenVersion string `json:"tokenVersion,omitempty"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserResponse is used for API responses (without credentials)
type UserResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Role:     u.Role,
	}
}
