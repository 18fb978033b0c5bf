package directory

import (
	"fmt"
	"slices"

	"greenwood.com/sis/core"
	"greenwood.com/sis/model"
	"greenwood.com/sis/utils"
)

const defaultEmployeePassword = "default123"

func (d *Directory) Employees() ([]model.Employee, error) {
	doc, err := d.db.Employees.Load()
	if err != nil {
		return nil, err
	}
	return doc.Employees, nil
}

func (d *Directory) EmployeesByDepartment(department string) ([]model.Employee, error) {
	doc, err := d.db.Employees.Load()
	if err != nil {
		return nil, err
	}
	return utils.Filter(doc.Employees, func(e model.Employee) bool {
		return e.Department == department
	}), nil
}

func (d *Directory) Departments() ([]string, error) {
	doc, err := d.db.Employees.Load()
	if err != nil {
		return nil, err
	}
	return doc.Departments, nil
}

// Employee returns the record for one employee, or ErrNotFound.
func (d *Directory) Employee(employeeID int) (model.Employee, error) {
	doc, err := d.db.Employees.Load()
	if err != nil {
		return model.Employee{}, err
	}
	emp := utils.Find(doc.Employees, func(e model.Employee) bool { return e.ID == employeeID })
	if emp == nil {
		return model.Employee{}, fmt.Errorf("%w: employee %d", core.ErrNotFound, employeeID)
	}
	return *emp, nil
}

// AddEmployee creates an employee with the next free id and the default
// password. The returned id is the assigned one.
func (d *Directory) AddEmployee(name, department string) (int, error) {
	if name == "" || department == "" {
		return 0, fmt.Errorf("%w: name and department are required", core.ErrInvalidInput)
	}
	hash, err := hashPassword(defaultEmployeePassword)
	if err != nil {
		return 0, err
	}

	var newID int
	err = d.db.Employees.Transact(func(doc *model.EmployeesDocument) error {
		for i := range doc.Employees {
			if doc.Employees[i].ID >= newID {
				newID = doc.Employees[i].ID
			}
		}
		newID++
		doc.Employees = append(doc.Employees, model.Employee{
			ID:             newID,
			Name:           name,
			Department:     department,
			AssignedGrades: []string{},
			Password:       hash,
			WorkingHours:   &model.WorkingHours{Daily: 8, Weekly: 40},
		})
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newID, nil
}

func (d *Directory) UpdateEmployee(employeeID int, update model.EmployeeUpdate) error {
	return d.db.Employees.Transact(func(doc *model.EmployeesDocument) error {
		for i := range doc.Employees {
			if doc.Employees[i].ID == employeeID {
				doc.Employees[i].Apply(update)
				return nil
			}
		}
		return fmt.Errorf("%w: employee %d", core.ErrNotFound, employeeID)
	})
}

func (d *Directory) RemoveEmployee(employeeID int) error {
	return d.db.Employees.Transact(func(doc *model.EmployeesDocument) error {
		kept := utils.Filter(doc.Employees, func(e model.Employee) bool {
			return e.ID != employeeID
		})
		if len(kept) == len(doc.Employees) {
			return fmt.Errorf("%w: employee %d", core.ErrNotFound, employeeID)
		}
		doc.Employees = kept
		return nil
	})
}

// AssignGrade adds a class to a teacher's assignment set; assigning an
// already-held grade is a no-op.
func (d *Directory) AssignGrade(employeeID int, grade string) error {
	return d.db.Employees.Transact(func(doc *model.EmployeesDocument) error {
		for i := range doc.Employees {
			emp := &doc.Employees[i]
			if emp.ID != employeeID {
				continue
			}
			if !slices.Contains(emp.AssignedGrades, grade) {
				emp.AssignedGrades = append(emp.AssignedGrades, grade)
			}
			return nil
		}
		return fmt.Errorf("%w: employee %d", core.ErrNotFound, employeeID)
	})
}

func (d *Directory) RemoveGrade(employeeID int, grade string) error {
	return d.db.Employees.Transact(func(doc *model.EmployeesDocument) error {
		for i := range doc.Employees {
			emp := &doc.Employees[i]
			if emp.ID != employeeID {
				continue
			}
			emp.AssignedGrades = utils.Filter(emp.AssignedGrades, func(g string) bool {
				return g != grade
			})
			return nil
		}
		return fmt.Errorf("%w: employee %d", core.ErrNotFound, employeeID)
	})
}

func (d *Directory) AssignedGrades(employeeID int) ([]string, error) {
	emp, err := d.Employee(employeeID)
	if err != nil {
		return nil, err
	}
	return emp.AssignedGrades, nil
}

func (d *Directory) EmployeesByGrade(grade string) ([]model.Employee, error) {
	doc, err := d.db.Employees.Load()
	if err != nil {
		return nil, err
	}
	return utils.Filter(doc.Employees, func(e model.Employee) bool {
		return slices.Contains(e.AssignedGrades, grade)
	}), nil
}

func (d *Directory) VerifyEmployeePassword(employeeID int, password string) (bool, error) {
	emp, err := d.Employee(employeeID)
	if err != nil {
		return false, err
	}
	return passwordMatches(emp.Password, password), nil
}

func (d *Directory) ChangeEmployeePassword(employeeID int, oldPassword, newPassword string) error {
	ok, err := d.VerifyEmployeePassword(employeeID, oldPassword)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: current password does not match", core.ErrInvalidInput)
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	return d.db.Employees.Transact(func(doc *model.EmployeesDocument) error {
		for i := range doc.Employees {
			if doc.Employees[i].ID == employeeID {
				doc.Employees[i].Password = hash
				return nil
			}
		}
		return fmt.Errorf("%w: employee %d", core.ErrNotFound, employeeID)
	})
}

// SetEmployeeWorkingHours updates the per-employee override used by
// overtime calculation. Nil keeps the existing value.
func (d *Directory) SetEmployeeWorkingHours(employeeID int, daily, weekly *float64) error {
	if _, err := d.Employee(employeeID); err != nil {
		return err
	}
	return d.db.WorkingHours.Transact(func(doc *model.WorkingHoursDocument) error {
		if doc.EmployeeSettings == nil {
			doc.EmployeeSettings = map[string]model.EmployeeHours{}
		}
		key := fmt.Sprintf("%d", employeeID)
		s := doc.EmployeeSettings[key]
		if daily != nil {
			s.Daily = daily
		}
		if weekly != nil {
			s.Weekly = weekly
		}
		doc.EmployeeSettings[key] = s
		return nil
	})
}

func (d *Directory) SetStandardWorkingHours(daily, weekly, overtimeRate float64) error {
	if daily <= 0 || weekly <= 0 || overtimeRate <= 0 {
		return fmt.Errorf("%w: working hours and rate must be positive", core.ErrInvalidInput)
	}
	return d.db.WorkingHours.Transact(func(doc *model.WorkingHoursDocument) error {
		doc.StandardDailyHours = daily
		doc.StandardWeeklyHours = weekly
		doc.OvertimeRate = overtimeRate
		return nil
	})
}

func (d *Directory) WorkingHoursSettings() (model.WorkingHoursDocument, error) {
	return d.db.WorkingHours.Load()
}
