package entity

// Faculty is the role-specific profile attached 1:1 to a User with
// RoleFaculty. EmployeeID is a globally unique natural key.
type Faculty struct {
	UserID         string     `json:"user_id"`
	EmployeeID     string     `json:"employee_id"`
	DepartmentID   string     `json:"department_id"`
	Designation    string     `json:"designation,omitempty"`
	Specialization string     `json:"specialization,omitempty"`
	User           PublicUser `json:"user"`
}
