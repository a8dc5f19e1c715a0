package entity

// Student is the role-specific profile attached 1:1 to a User with
// RoleStudent. RollNumber and PRN are globally unique natural keys.
type Student struct {
	UserID       string     `json:"user_id"`
	RollNumber   string     `json:"roll_number"`
	PRN          string     `json:"prn,omitempty"`
	DepartmentID string     `json:"department_id"`
	Year         int        `json:"year"`
	Division     string     `json:"division,omitempty"`
	AcademicYear string     `json:"academic_year,omitempty"`
	User         PublicUser `json:"user"`
}
