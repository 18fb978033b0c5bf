package directory

import (
	"fmt"

	"greenwood.com/sis/core"
	"greenwood.com/sis/model"
)

type SchoolInfo struct {
	Name           string `json:"name"`
	Year           string `json:"year"`
	TotalEmployees int    `json:"total_employees"`
	TotalStudents  int    `json:"total_students"`
}

func (d *Directory) SchoolInfo() (SchoolInfo, error) {
	settings, err := d.db.Settings.Load()
	if err != nil {
		return SchoolInfo{}, err
	}
	employees, err := d.Employees()
	if err != nil {
		return SchoolInfo{}, err
	}
	students, err := d.Students()
	if err != nil {
		return SchoolInfo{}, err
	}
	return SchoolInfo{
		Name:           settings.SchoolName,
		Year:           settings.SchoolYear,
		TotalEmployees: len(employees),
		TotalStudents:  len(students),
	}, nil
}

func (d *Directory) Settings() (model.SettingsDocument, error) {
	return d.db.Settings.Load()
}

func (d *Directory) Terms() ([]string, error) {
	settings, err := d.db.Settings.Load()
	if err != nil {
		return nil, err
	}
	return settings.Terms, nil
}

func (d *Directory) Subjects() ([]string, error) {
	settings, err := d.db.Settings.Load()
	if err != nil {
		return nil, err
	}
	return settings.Subjects, nil
}

// VerifyAdminPassword checks the shared admin secret.
func (d *Directory) VerifyAdminPassword(password string) (bool, error) {
	settings, err := d.db.Settings.Load()
	if err != nil {
		return false, err
	}
	return passwordMatches(settings.AdminPassword, password), nil
}

func (d *Directory) ChangeAdminPassword(oldPassword, newPassword string) error {
	ok, err := d.VerifyAdminPassword(oldPassword)
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
	return d.db.Settings.Transact(func(doc *model.SettingsDocument) error {
		doc.AdminPassword = hash
		return nil
	})
}

// SetTermDays sets the explicit length of one term, overriding the default.
func (d *Directory) SetTermDays(termKey string, days int) error {
	if termKey == "" || days <= 0 {
		return fmt.Errorf("%w: term key and positive day count required", core.ErrInvalidInput)
	}
	return d.db.Settings.Transact(func(doc *model.SettingsDocument) error {
		if doc.TermDays == nil {
			doc.TermDays = map[string]int{}
		}
		doc.TermDays[termKey] = days
		return nil
	})
}
