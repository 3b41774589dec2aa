// Package users is the owning service for user accounts and the login and
// logout mutations that write session state.
package users

import "go.mongodb.org/mongo-driver/bson/primitive"

// Roles assigned to accounts. Integration accounts belong to backstage
// tooling such as the player generator.
const (
	RoleUser        = "user"
	RoleAdmin       = "admin"
	RoleIntegration = "integration"
)

// User represents a registered account.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Role     string             `bson:"role" json:"role"`
}

// Info is the public projection other services see when they resolve a
// User entity. The password hash never leaves this service.
type Info struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Public returns the entity-resolution projection of the user.
func (u *User) Public() Info {
	return Info{
		ID:       u.ID.Hex(),
		Username: u.Username,
		Role:     u.Role,
	}
}
