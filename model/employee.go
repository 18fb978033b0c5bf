package model

// EmployeesDocument is the full contents of employees.json.
type EmployeesDocument struct {
	Departments []string   `json:"departments"`
	Employees   []Employee `json:"employees"`
}

type Employee struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Department     string        `json:"department"`
	AssignedGrades []string      `json:"assigned_grades"`
	Role           string        `json:"role"`
	Password       string        `json:"password"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	Address        string        `json:"address"`
	WorkingHours   *WorkingHours `json:"working_hours,omitempty"`
}

// WorkingHours is the per-employee override carried on the employee record
// itself. The authoritative override used for overtime lives in
// working_hours.json; this copy exists for display.
type WorkingHours struct {
	Daily  float64 `json:"daily"`
	Weekly float64 `json:"weekly"`
}

// EmployeeUpdate enumerates the fields a caller may change on an employee.
// Nil fields are left untouched.
type EmployeeUpdate struct {
	Name       *string `json:"name,omitempty"`
	Department *string `json:"department,omitempty"`
	Role       *string `json:"role,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
}

func (e *Employee) Apply(u EmployeeUpdate) {
	if u.Name != nil {
		e.Name = *u.Name
	}
	if u.Department != nil {
		e.Department = *u.Department
	}
	if u.Role != nil {
		e.Role = *u.Role
	}
	if u.Email != nil {
		e.Email = *u.Email
	}
	if u.Phone != nil {
		e.Phone = *u.Phone
	}
	if u.Address != nil {
		e.Address = *u.Address
	}
}
