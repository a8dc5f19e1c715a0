package entity

// Admin is the role-specific profile attached 1:1 to a User with RoleAdmin.
type Admin struct {
	UserID       string     `json:"user_id"`
	DepartmentID string     `json:"department_id"`
	User         PublicUser `json:"user"`
}
