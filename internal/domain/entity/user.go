package entity

import "time"

// Role is the coarse authorization role fixed at registration.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleFaculty Role = "FACULTY"
	RoleAdmin   Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// User is the aggregate root for identity. Password holds a bcrypt hash and
// must never leave the store/hashing boundary; PublicView strips it.
//
// Deletion is soft only: IsDeleted/DeletedAt flip, the row stays. A deleted
// row holding an email may be revived in place by a new registration.
type User struct {
	ID        string
	Email     string
	Name      string
	Password  string
	Role      Role
	IsDeleted bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicUser is the externally visible projection of a User.
type PublicUser struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      Role       `json:"role"`
	IsDeleted bool       `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// PublicView returns the user with the password hash stripped.
func (u *User) PublicView() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		IsDeleted: u.IsDeleted,
		DeletedAt: u.DeletedAt,
		CreatedAt: u.CreatedAt,
	}
}
